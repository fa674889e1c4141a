package macrolens

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "info": {
	        "isin": "...",
	        "chartType": "mini",
	        "plotlines": [
	            {
	                "label": "previous 42729",
	                "value": 42729.21,
	                "align": "left",
	                "id": "previousDay"
	            }
	        ]
	    },
	    "series": {
	        "intraday": {
	            "data": [[1725004800000, 42729.21], ...]
	        }
	    }
	}
*/

// LatestQuote fetches the current level of an index from the LS Exchange
// mini-chart endpoint. It is a convenience for the report header: the
// historical analysis itself only uses end-of-day data.
func LatestQuote(instrumentID string) (float64, error) {
	addr := fmt.Sprintf("https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=%s&series=intraday&type=mini", instrumentID)
	var jobj any
	// intraday data, so no disk cache here.
	if err := GetJSON(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", instrumentID, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", instrumentID, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", instrumentID, path, "not a float", jval)
	}
	return val, nil
}
