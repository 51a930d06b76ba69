package service

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/featherduino/optionsScreener/model"

	"github.com/mitchellh/mapstructure"
)

// Interest-score weights. Empirically tuned policy, kept as variables so a
// deployment can override them at startup.
var (
	WeightOIDifference  = 0.0001
	WeightTotalVolume   = 0.0005
	WeightLTPDifference = 0.05
)

// TopStrikesLimit caps the ranked output.
const TopStrikesLimit = 15

var scoreColumns = []string{"calloi", "putoi", "callvol", "putvol", "callltp", "putltp"}

type scoreFields struct {
	CallOI  float64 `mapstructure:"calloi"`
	PutOI   float64 `mapstructure:"putoi"`
	CallVol float64 `mapstructure:"callvol"`
	PutVol  float64 `mapstructure:"putvol"`
	CallLTP float64 `mapstructure:"callltp"`
	PutLTP  float64 `mapstructure:"putltp"`
}

// ImportantStrikes scores every row and returns at most TopStrikesLimit rows
// by descending score, ties keeping original order. Each returned row carries
// a "score" field. If the table lacks any of the scoring columns it is
// returned untouched so a sparse vendor response never turns into a 500.
func ImportantStrikes(rows []model.OptionRow) []model.OptionRow {
	if len(rows) == 0 {
		return []model.OptionRow{}
	}

	scored := make([]model.OptionRow, 0, len(rows))
	for _, row := range rows {
		score, ok := ScoreRow(row)
		if !ok {
			return rows
		}

		copied := make(model.OptionRow, len(row)+1)
		for k, v := range row {
			copied[k] = v
		}
		copied["score"] = score
		scored = append(scored, copied)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i]["score"].(float64) > scored[j]["score"].(float64)
	})

	if len(scored) > TopStrikesLimit {
		scored = scored[:TopStrikesLimit]
	}
	return scored
}

// ScoreRow computes the interest score for one row. The bool is false when
// any scoring column is missing from the row.
func ScoreRow(row model.OptionRow) (float64, bool) {
	resolved, ok := resolveScoreColumns(row)
	if !ok {
		return 0, false
	}

	var fields scoreFields
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &fields,
	})
	if err != nil {
		return 0, false
	}
	if err := decoder.Decode(resolved); err != nil {
		return 0, false
	}

	score := WeightOIDifference*math.Abs(fields.CallOI-fields.PutOI) +
		WeightTotalVolume*(fields.CallVol+fields.PutVol) +
		WeightLTPDifference*math.Abs(fields.CallLTP-fields.PutLTP)
	return score, true
}

// resolveScoreColumns matches the required columns case-insensitively against
// the vendor's field names. Nil cells count as zero.
func resolveScoreColumns(row model.OptionRow) (map[string]any, bool) {
	out := make(map[string]any, len(scoreColumns))
	for key, val := range row {
		lower := strings.ToLower(key)
		for _, col := range scoreColumns {
			if lower == col {
				if val == nil {
					val = 0.0
				}
				out[col] = val
			}
		}
	}

	for _, col := range scoreColumns {
		if _, ok := out[col]; !ok {
			return nil, false
		}
	}
	return out, true
}

// BuildChartViews prepares chart-friendly slices of the chain: OI bars, IV
// skew and a put/call-ratio series. Slices whose columns are absent come back
// empty rather than failing.
func BuildChartViews(rows []model.OptionRow) model.ChartViews {
	views := model.ChartViews{
		OIBars:     []model.OIBar{},
		IVSkew:     []model.IVPoint{},
		PCRHeatmap: []model.PCRPoint{},
	}
	if len(rows) == 0 {
		return views
	}

	pick := func(options ...string) string {
		for key := range rows[0] {
			lower := strings.ToLower(key)
			for _, opt := range options {
				if lower == opt {
					return key
				}
			}
		}
		return ""
	}

	strikeKey := pick("strike", "strikeprice")
	callOIKey := pick("calloi", "call_oi", "coi", "callopeninterest")
	putOIKey := pick("putoi", "put_oi", "poi", "putopeninterest")
	callIVKey := pick("calliv", "civ", "call_iv", "ivcall")
	putIVKey := pick("putiv", "piv", "put_iv", "ivput")

	if strikeKey != "" && callOIKey != "" && putOIKey != "" {
		for _, row := range rows {
			views.OIBars = append(views.OIBars, model.OIBar{
				Strike: row[strikeKey],
				CallOI: row[callOIKey],
				PutOI:  row[putOIKey],
			})

			point := model.PCRPoint{Strike: row[strikeKey]}
			callOI, callOK := asFloat(row[callOIKey])
			putOI, putOK := asFloat(row[putOIKey])
			if callOK && putOK && callOI != 0 {
				pcr := putOI / callOI
				if !math.IsNaN(pcr) && !math.IsInf(pcr, 0) {
					point.PCR = &pcr
				}
			}
			views.PCRHeatmap = append(views.PCRHeatmap, point)
		}
	}

	if strikeKey != "" && callIVKey != "" && putIVKey != "" {
		for _, row := range rows {
			views.IVSkew = append(views.IVSkew, model.IVPoint{
				Strike: row[strikeKey],
				CallIV: row[callIVKey],
				PutIV:  row[putIVKey],
			})
		}
	}

	return views
}

func asFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
