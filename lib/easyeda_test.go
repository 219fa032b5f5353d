package lib

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeComponentPayload(t *testing.T) {
	/*
		Trimmed capture of the drawing service response.
	*/
	payload := `{
		"success": true,
		"code": 0,
		"result": {
			"uuid": "abc123",
			"title": "RC0402FR-0710KL",
			"description": "Chip Resistor",
			"datasheet": "https://datasheet.lcsc.com/C25744.pdf",
			"lcsc": {"number": "C25744"},
			"dataStr": {
				"head": {"x": 400, "y": 300, "c_para": {"pre": "R?", "package": "R0402"}},
				"shape": ["P~show~8~1~300~300~0~gge1^^0~310~300^^0~310~300~0^^0~313~300~0~1~start~5~9pt"]
			},
			"packageDetail": {
				"title": "R0402",
				"dataStr": {
					"head": {"x": 4000, "y": 3000},
					"shape": ["PAD~RECT~3900~3000~60~60~1~~1~0~~0"]
				}
			}
		}
	}`

	response := easyedaResponse{}
	require.NoError(t, json.Unmarshal([]byte(payload), &response))
	require.True(t, response.Success)
	require.NotNil(t, response.Result)

	component := BuildComponent(response.Result)
	assert.Equal(t, "RC0402FR-0710KL", component.Info.Name)
	assert.Equal(t, "C25744", component.Info.CatalogID)
	assert.Equal(t, "R", component.Info.Prefix)
	require.Len(t, component.Symbol.Pins, 1)
	require.Len(t, component.Footprint.Shapes.Pads, 1)
	assert.Equal(t, 4000.0, component.Footprint.OriginX)
}

func TestDecodeComponentPayloadNotFound(t *testing.T) {
	response := easyedaResponse{}
	require.NoError(t, json.Unmarshal([]byte(`{"success": false, "code": 404}`), &response))
	assert.Nil(t, response.Result)
}
