package lib

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

/*
	Client for the EasyEDA component API, which serves the drawing data
	behind every LCSC part number. Requests are rate-limited the same
	way as the JLC client: the lock is released on a timer so callers
	never fire more than one request per interval.
*/
type EasyEDA struct {
	lock *sync.Mutex
}

func NewEasyEDA() *EasyEDA {
	return &EasyEDA{
		lock: &sync.Mutex{},
	}
}

/*
	One drawing (schematic symbol or footprint): an origin in the head
	plus an ordered list of delimited shape records.
*/
type RawDrawing struct {
	Head struct {
		X     float64           `json:"x"`
		Y     float64           `json:"y"`
		CPara map[string]string `json:"c_para"`
	} `json:"head"`
	Shape []string `json:"shape"`
}

/*
	RawComponent is the untouched service payload for one part. The
	symbol drawing lives in dataStr, the footprint drawing one level
	down in packageDetail.
*/
type RawComponent struct {
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Datasheet   string `json:"datasheet"`
	LCSC        struct {
		Number string `json:"number"`
	} `json:"lcsc"`
	DataStr       RawDrawing `json:"dataStr"`
	PackageDetail struct {
		Title   string     `json:"title"`
		DataStr RawDrawing `json:"dataStr"`
	} `json:"packageDetail"`
}

type easyedaResponse struct {
	Success bool          `json:"success"`
	Code    int           `json:"code"`
	Result  *RawComponent `json:"result"`
}

/*
	Anything able to produce a raw component for a catalog code. The
	install pipeline depends on this, not on the concrete client.
*/
type ComponentFetcher interface {
	Component(code string) (*RawComponent, error)
}

/*
	Fetch the raw component record for an LCSC part code, e.g. C25725.
	A missing result field means the part does not exist in the
	catalog.
*/
func (e *EasyEDA) Component(code string) (*RawComponent, error) {
	e.lock.Lock()
	go func() {
		defer e.lock.Unlock()
		time.Sleep(1500 * time.Millisecond)
	}()

	req, err := http.NewRequest(
		"GET",
		"https://easyeda.com/api/products/"+code+"/components?version=6.4.19.5",
		nil,
	)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	response := easyedaResponse{}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&response); err != nil {
		return nil, err
	}

	if !response.Success || response.Result == nil {
		return nil, fmt.Errorf("%s: %w", code, ErrNotFound)
	}

	return response.Result, nil
}
