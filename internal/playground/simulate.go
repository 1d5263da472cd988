package playground

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Demo-mode calldata fragments. These are fixed example encodings, not the
// output of a real ABI encoder: amounts are always 1000e18 or 500e18 no
// matter what the form says.
const (
	selApprove     = "0x095ea7b3"
	selLockCreda   = "0xbec697db"
	selCreateToken = "0xfd44d274"
	selBurnGame    = "0x5ed6c1db"

	hexAmount1000 = "3635c9adc5dea00000"
	hexAmount500  = "1b1ae4d6e2ef500000"
)

var (
	addrPad    = zeros(24)
	wordAmount = zeros(46) + hexAmount1000
	// One nibble longer than a word; kept as-is to match the published examples.
	wordBurn = zeros(47) + hexAmount500

	createTokenHead = selCreateToken + wordAmount + word("80") + word("c0") + word("12") + word("d")
)

// DemoVersion is what the simulated health check reports.
const DemoVersion = "0.1.0"

// Simulate fabricates the response the calldata API would return for req.
// A body that lacks a field the template reads is an error.
func Simulate(req Request) (map[string]any, error) {
	b := simBody(req.Body)

	switch req.Endpoint {
	case Health:
		return map[string]any{"status": "ok", "version": DemoVersion}, nil

	case CredaApprove, ApproveXP:
		spender, err := b.str("spender")
		if err != nil {
			return nil, err
		}
		return map[string]any{"calldata": approveCalldata(spender, wordAmount)}, nil

	case LockCreda:
		return map[string]any{"calldata": lockCalldata()}, nil

	case CreateToken:
		name, err := b.str("name")
		if err != nil {
			return nil, err
		}
		symbol, err := b.str("symbol")
		if err != nil {
			return nil, err
		}
		return map[string]any{"calldata": createCalldata(name, symbol)}, nil

	case BurnToken:
		gameID, err := b.str("game_id")
		if err != nil {
			return nil, err
		}
		return map[string]any{"calldata": burnCalldata(gameID)}, nil

	case FlowCreate:
		factory, err := b.str("factory_address")
		if err != nil {
			return nil, err
		}
		amount, err := b.str("creda_amount")
		if err != nil {
			return nil, err
		}
		name, err := b.str("game_name")
		if err != nil {
			return nil, err
		}
		symbol, err := b.str("game_symbol")
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"creda_approve": approveCalldata(factory, wordAmount),
			"lock_creda":    lockCalldata(),
			"xp_amount":     amount,
			"xp_approve":    approveCalldata(factory, wordAmount),
			"create_token":  createCalldata(name, symbol),
		}, nil

	case FlowBurn:
		factory, err := b.str("factory_address")
		if err != nil {
			return nil, err
		}
		gameID, err := b.str("game_id")
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"game_token_approve": approveCalldata(factory, wordBurn),
			"burn_game_token":    burnCalldata(gameID),
		}, nil
	}

	return UnknownEndpointResult(), nil
}

// UnknownEndpointResult is the response shown for a selection outside the table.
func UnknownEndpointResult() map[string]any {
	return map[string]any{"error": "Unknown endpoint"}
}

func approveCalldata(addr, amountWord string) string {
	return selApprove + addrPad + stripPrefix(addr) + amountWord
}

func lockCalldata() string {
	return selLockCreda + wordAmount
}

func createCalldata(name, symbol string) string {
	return createTokenHead + stringToHex(name) + zeros(63) + stringToHex(symbol) + zeros(54)
}

func burnCalldata(gameID string) string {
	return selBurnGame + zeros(63) + gameID + wordBurn
}

// stripPrefix drops the first two characters, whatever they are.
func stripPrefix(addr string) string {
	if len(addr) < 2 {
		return ""
	}
	return addr[2:]
}

// stringToHex renders each UTF-16 code unit as unpadded lowercase hex.
func stringToHex(s string) string {
	var sb strings.Builder
	for _, u := range utf16.Encode([]rune(s)) {
		sb.WriteString(strconv.FormatUint(uint64(u), 16))
	}
	return sb.String()
}

func zeros(n int) string { return strings.Repeat("0", n) }

func word(h string) string { return zeros(64-len(h)) + h }

type simBody map[string]any

func (b simBody) str(key string) (string, error) {
	v, ok := b[key]
	if !ok || v == nil {
		return "", fmt.Errorf("missing field %q", key)
	}
	switch t := v.(type) {
	case string:
		return t, nil
	default:
		return fmt.Sprint(t), nil
	}
}
