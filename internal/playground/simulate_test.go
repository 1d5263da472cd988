package playground

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddr = "0x1234567890123456789012345678901234567890"

func simulate(t *testing.T, name string, values map[string]string) map[string]any {
	t.Helper()
	req, err := Build(name, values)
	require.NoError(t, err)
	resp, err := Simulate(req)
	require.NoError(t, err)
	return resp
}

func TestSimulateHealth(t *testing.T) {
	resp := simulate(t, "health", nil)
	assert.Equal(t, map[string]any{"status": "ok", "version": "0.1.0"}, resp)
}

func TestSimulateLockCreda(t *testing.T) {
	resp := simulate(t, "lock-creda", map[string]string{"amount": "1000000000000000000000"})
	calldata, ok := resp["calldata"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(calldata, "0xbec697db"))
	assert.Equal(t, "0xbec697db00000000000000000000000000000000000000000000003635c9adc5dea00000", calldata)
}

func TestSimulateApproveEmbedsSpender(t *testing.T) {
	for _, name := range []string{"creda-approve", "approve-xp"} {
		t.Run(name, func(t *testing.T) {
			resp := simulate(t, name, map[string]string{"spender": testAddr, "amount": "1"})
			calldata := resp["calldata"].(string)
			assert.Equal(t,
				"0x095ea7b3000000000000000000000000"+testAddr[2:]+
					"00000000000000000000000000000000000000000000003635c9adc5dea00000",
				calldata)
			assert.Len(t, calldata, 2+8+64+64)
		})
	}
}

func TestSimulateCreateTokenHexEncodesStrings(t *testing.T) {
	resp := simulate(t, "create-token", map[string]string{
		"xp_amount": "1000", "name": "AB", "symbol": "C", "decimals": "18",
	})
	calldata := resp["calldata"].(string)
	assert.True(t, strings.HasPrefix(calldata, "0xfd44d274"))
	assert.Contains(t, calldata, "000d"+"4142"+strings.Repeat("0", 63)+"43")
	assert.True(t, strings.HasSuffix(calldata, "43"+strings.Repeat("0", 54)))
}

func TestSimulateBurnTokenSplicesGameID(t *testing.T) {
	resp := simulate(t, "burn-token", map[string]string{"game_id": "1", "amount": "5"})
	assert.Equal(t,
		"0x5ed6c1db"+strings.Repeat("0", 63)+"1"+strings.Repeat("0", 47)+"1b1ae4d6e2ef500000",
		resp["calldata"])
}

func TestSimulateFlowCreate(t *testing.T) {
	resp := simulate(t, "flow-create", map[string]string{
		"factory_address": testAddr,
		"creda_amount":    "42",
		"game_name":       "Game",
		"game_symbol":     "GM",
		"decimals":        "18",
	})
	assert.Len(t, resp, 5)
	assert.Equal(t, "42", resp["xp_amount"])
	assert.Equal(t, resp["creda_approve"], resp["xp_approve"])
	assert.Equal(t, "0xbec697db00000000000000000000000000000000000000000000003635c9adc5dea00000", resp["lock_creda"])
	assert.Contains(t, resp["creda_approve"], testAddr[2:])
	assert.True(t, strings.HasPrefix(resp["create_token"].(string), "0xfd44d274"))
}

func TestSimulateFlowBurn(t *testing.T) {
	resp := simulate(t, "flow-burn", map[string]string{
		"factory_address":    testAddr,
		"game_token_address": "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd",
		"game_id":            "3",
		"burn_amount":        "500",
	})
	assert.Len(t, resp, 2)
	assert.True(t, strings.HasPrefix(resp["game_token_approve"].(string), "0x095ea7b3"))
	assert.True(t, strings.HasSuffix(resp["game_token_approve"].(string), "1b1ae4d6e2ef500000"))
	assert.True(t, strings.HasPrefix(resp["burn_game_token"].(string), "0x5ed6c1db"))
}

func TestSimulateShortAddress(t *testing.T) {
	resp := simulate(t, "creda-approve", map[string]string{"spender": "0", "amount": "1"})
	assert.Equal(t,
		"0x095ea7b3000000000000000000000000"+"00000000000000000000000000000000000000000000003635c9adc5dea00000",
		resp["calldata"])
}

func TestSimulateMissingField(t *testing.T) {
	_, err := Simulate(Request{Endpoint: CredaApprove})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spender")
}

func TestSimulateUnknownEndpoint(t *testing.T) {
	resp, err := Simulate(Request{Endpoint: "teleport"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"error": "Unknown endpoint"}, resp)
}

func TestStringToHex(t *testing.T) {
	assert.Equal(t, "4d4754", stringToHex("MGT"))
	assert.Equal(t, "", stringToHex(""))
	// No zero padding for control characters.
	assert.Equal(t, "a", stringToHex("\n"))
	assert.Equal(t, "20ac", stringToHex("€"))
}
