package lib

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeComponentList(t *testing.T) {
	/*
		Trimmed capture of a selectSmtComponentList response.
	*/
	payload := `{
		"code": 200,
		"data": {
			"componentPageInfo": {
				"hasNextPage": false,
				"list": [{
					"componentCode": "C25725",
					"componentTypeEn": "Resistors",
					"describe": "Resistor Networks & Arrays",
					"componentModelEn": "4D02WGJ0103TCE",
					"componentSpecificationEn": "0402_x4",
					"componentBrandEn": "Uniroyal Elec",
					"componentLibraryType": "base",
					"erpComponentName": "Resistor Networks 10KOhms 0402_x4",
					"dataManualUrl": "https://datasheet.lcsc.com/szlcsc/C25725.pdf"
				}]
			}
		}
	}`

	response := jlcSelectComponentListResponse{}
	require.NoError(t, json.Unmarshal([]byte(payload), &response))
	require.Len(t, response.Data.ComponentPageInfo.List, 1)

	component := response.Data.ComponentPageInfo.List[0].component()
	require.Equal(t, "C25725", component.ID)
	require.Equal(t, "Resistors", component.FirstCategory)
	require.Equal(t, "Uniroyal Elec", component.Manufacturer)
	require.Equal(t, "https://datasheet.lcsc.com/szlcsc/C25725.pdf", component.Datasheet)
	require.True(t, component.Basic)
}
