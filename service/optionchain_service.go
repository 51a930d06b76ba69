package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/featherduino/optionsScreener/database"
	"github.com/featherduino/optionsScreener/model"

	"github.com/rs/zerolog/log"
)

const (
	chainCacheTTL   = 30 * time.Second
	historyKeep     = 30 // LTRIM bound, keeps 31 entries
	historyTTL      = 10 * 24 * time.Hour
	historyKeySpace = "oi_history:"
)

// TrueDataAPI is the vendor surface the service needs; the concrete resty
// client satisfies it, tests inject fakes.
type TrueDataAPI interface {
	GetExpiryList(ctx context.Context, symbol string) ([]string, error)
	GetOptionChainWithGreeks(ctx context.Context, symbol, expiry string) ([]model.OptionRow, error)
	TokenStatus() model.TokenStatus
}

type OptionChainService interface {
	GetExpiries(ctx context.Context, symbol string) ([]string, string)
	FetchChain(ctx context.Context, symbol, expiry string) model.ChainResult
	RecordHistory(symbol, expiry string, rows []model.OptionRow) []model.OISnapshot
	TokenStatus() model.TokenStatus
}

type OptionChainServiceImpl struct {
	td           TrueDataAPI
	cacheEnabled bool
}

func NewOptionChainService(td TrueDataAPI, cacheEnabled bool) OptionChainService {
	return &OptionChainServiceImpl{td: td, cacheEnabled: cacheEnabled}
}

// GetExpiries never fails: vendor errors degrade to an empty list, with the
// suppressed cause returned alongside for the debug field.
func (s *OptionChainServiceImpl) GetExpiries(ctx context.Context, symbol string) ([]string, string) {
	expiries, err := s.td.GetExpiryList(ctx, symbol)
	if err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("Expiry list fetch failed")
		return []string{}, err.Error()
	}
	return expiries, ""
}

// FetchChain returns the chain for a symbol/expiry pair, degrading to an
// empty result on any vendor failure. With caching enabled it reads through
// Redis with a short TTL; the default path fetches live on every request.
func (s *OptionChainServiceImpl) FetchChain(ctx context.Context, symbol, expiry string) model.ChainResult {
	cacheKey := "chain:" + symbol + ":" + expiry

	if s.cacheEnabled {
		var rows []model.OptionRow
		if ok, _ := database.RedisHelper.GetAsStruct(cacheKey, &rows); ok {
			return model.ChainResult{Rows: rows}
		}
	}

	rows, err := s.td.GetOptionChainWithGreeks(ctx, symbol, expiry)
	if err != nil {
		log.Error().Err(err).Str("symbol", symbol).Str("expiry", expiry).Msg("Option chain fetch failed")
		return model.ChainResult{Rows: []model.OptionRow{}, Reason: err.Error()}
	}
	if rows == nil {
		rows = []model.OptionRow{}
	}

	if s.cacheEnabled && len(rows) > 0 {
		database.RedisHelper.Set(cacheKey, rows, chainCacheTTL)
	}

	return model.ChainResult{Rows: rows}
}

// RecordHistory persists a total call/put OI snapshot for trend plotting and
// returns the stored history oldest-first. Without an active Redis helper, or
// on any Redis error, it quietly returns an empty history.
func (s *OptionChainServiceImpl) RecordHistory(symbol, expiry string, rows []model.OptionRow) []model.OISnapshot {
	if !database.RedisHelper.Active() || len(rows) == 0 {
		return []model.OISnapshot{}
	}

	callSum, putSum := sumOpenInterest(rows)
	snapshot := model.OISnapshot{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		CallOI:    &callSum,
		PutOI:     &putSum,
		Expiry:    expiry,
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return []model.OISnapshot{}
	}

	key := historyKeySpace + symbol + ":" + expiry
	if err := database.RedisHelper.PushCapped(key, string(payload), historyKeep, historyTTL); err != nil {
		return []model.OISnapshot{}
	}

	raw, err := database.RedisHelper.List(key)
	if err != nil {
		return []model.OISnapshot{}
	}

	history := make([]model.OISnapshot, 0, len(raw))
	for _, entry := range raw {
		var snap model.OISnapshot
		if err := json.Unmarshal([]byte(entry), &snap); err != nil {
			continue
		}
		history = append(history, snap)
	}

	// LPUSH stores newest first; callers want oldest first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history
}

func (s *OptionChainServiceImpl) TokenStatus() model.TokenStatus {
	return s.td.TokenStatus()
}

func sumOpenInterest(rows []model.OptionRow) (callSum, putSum float64) {
	for _, row := range rows {
		for key, val := range row {
			f, ok := asFloat(val)
			if !ok {
				continue
			}
			switch strings.ToLower(key) {
			case "calloi":
				callSum += f
			case "putoi":
				putSum += f
			}
		}
	}
	return callSum, putSum
}
