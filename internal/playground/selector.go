package playground

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// Selector returns the 4-byte keccak selector of the contract function the
// endpoint encodes, or "" for endpoints that do not map to a single call.
func (d Descriptor) Selector() string {
	if d.Signature == "" {
		return ""
	}
	return FunctionSelector(d.Signature)
}

// FunctionSelector computes "0x" + hex(keccak256(sig)[:4]) for a canonical
// signature such as "approve(address,uint256)".
func FunctionSelector(sig string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(sig))
	return hexutil.Encode(h.Sum(nil)[:4])
}
