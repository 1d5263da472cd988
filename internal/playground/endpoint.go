package playground

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrUnknownEndpoint is returned for any name outside the endpoint table.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// Endpoint identifies one calldata API operation the playground can drive.
type Endpoint string

const (
	Health       Endpoint = "health"
	CredaApprove Endpoint = "creda-approve"
	ApproveXP    Endpoint = "approve-xp"
	LockCreda    Endpoint = "lock-creda"
	CreateToken  Endpoint = "create-token"
	BurnToken    Endpoint = "burn-token"
	FlowCreate   Endpoint = "flow-create"
	FlowBurn     Endpoint = "flow-burn"
)

// FieldKind drives input validation and JSON encoding of a form value.
type FieldKind int

const (
	KindText    FieldKind = iota // free text, sent verbatim
	KindAddress                  // 0x-prefixed 20-byte hex address
	KindAmount                   // unsigned integer in wei, sent as a string
	KindInteger                  // small integer, sent as a JSON number
)

func (k FieldKind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindAmount:
		return "amount"
	case KindInteger:
		return "integer"
	default:
		return "text"
	}
}

// Field is one input of an endpoint form.
type Field struct {
	Name        string // JSON body key and form input id
	Label       string
	Placeholder string
	Help        string // optional hint shown under the input
	Kind        FieldKind
}

// Validate checks a raw form value against the field kind.
// Empty values are rejected for every kind.
func (f Field) Validate(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return &FieldError{Field: f.Name, Reason: "is required"}
	}
	switch f.Kind {
	case KindAddress:
		if !common.IsHexAddress(v) || !strings.HasPrefix(v, "0x") {
			return &FieldError{Field: f.Name, Reason: "must be a 0x-prefixed 20-byte hex address"}
		}
	case KindAmount:
		if _, ok := parseUint(v); !ok {
			return &FieldError{Field: f.Name, Reason: "must be an unsigned integer (decimal or 0x hex)"}
		}
	case KindInteger:
		n, ok := parseInt(v)
		if !ok {
			return &FieldError{Field: f.Name, Reason: "must be an integer"}
		}
		if f.Name == "decimals" && (n < 0 || n > 18) {
			return &FieldError{Field: f.Name, Reason: "must be between 0 and 18"}
		}
	}
	return nil
}

// FieldError reports a form value that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Descriptor is the static definition of an endpoint.
type Descriptor struct {
	Endpoint    Endpoint
	Title       string
	Method      string
	Path        string
	Fields      []Field
	Signature   string // contract function the upstream encodes; empty for flows and health
	Description string
}

// Shared field definitions. Several endpoints reuse the same input.
var (
	fieldSpender = Field{
		Name: "spender", Label: "Spender Address", Placeholder: "0x1234...",
		Help: "Ethereum address of the spender", Kind: KindAddress,
	}
	fieldApproveAmount = Field{
		Name: "amount", Label: "Amount", Placeholder: "1000000000000000000000",
		Help: "Amount in wei (1 ETH = 10^18 wei)", Kind: KindAmount,
	}
	fieldFactory = Field{
		Name: "factory_address", Label: "Factory Address", Placeholder: "0x1234...",
		Help: "Ethereum address of the GameTokenFactory contract", Kind: KindAddress,
	}
	fieldDecimals = Field{
		Name: "decimals", Label: "Decimals", Placeholder: "18",
		Help: "Number of decimal places (0-18)", Kind: KindInteger,
	}
	fieldGameID = Field{
		Name: "game_id", Label: "Game ID", Placeholder: "1", Kind: KindAmount,
	}
)

// descriptors is the endpoint table, in selector display order.
var descriptors = []Descriptor{
	{
		Endpoint: Health, Title: "Health Check", Method: http.MethodGet, Path: "/",
		Description: "API status and version",
	},
	{
		Endpoint: CredaApprove, Title: "Approve CREDA", Method: http.MethodPost,
		Path:        "/api/v1/calldata/creda-approve",
		Fields:      []Field{fieldSpender, fieldApproveAmount},
		Signature:   "approve(address,uint256)",
		Description: "CREDA token approval to the factory",
	},
	{
		Endpoint: ApproveXP, Title: "Approve XP", Method: http.MethodPost,
		Path:        "/api/v1/calldata/approve-xp",
		Fields:      []Field{fieldSpender, fieldApproveAmount},
		Signature:   "approve(address,uint256)",
		Description: "XP token approval to the factory",
	},
	{
		Endpoint: LockCreda, Title: "Lock CREDA", Method: http.MethodPost,
		Path: "/api/v1/calldata/lock-creda",
		Fields: []Field{{
			Name: "amount", Label: "Amount", Placeholder: "1000000000000000000000",
			Help: "Amount of CRIDA tokens to lock (in wei)", Kind: KindAmount,
		}},
		Signature:   "lockCreda(uint256)",
		Description: "Lock CREDA in the factory to receive XP",
	},
	{
		Endpoint: CreateToken, Title: "Create Game Token", Method: http.MethodPost,
		Path: "/api/v1/calldata/create-token",
		Fields: []Field{
			{
				Name: "xp_amount", Label: "XP Amount", Placeholder: "1000000000000000000000",
				Help: "Amount of XP tokens to use (in wei)", Kind: KindAmount,
			},
			{Name: "name", Label: "Token Name", Placeholder: "My Game Token", Kind: KindText},
			{Name: "symbol", Label: "Token Symbol", Placeholder: "MGT", Kind: KindText},
			fieldDecimals,
		},
		Signature:   "createGameToken(uint256,string,string,uint8)",
		Description: "Deploy a new game token backed by XP",
	},
	{
		Endpoint: BurnToken, Title: "Burn Game Token", Method: http.MethodPost,
		Path: "/api/v1/calldata/burn-token",
		Fields: []Field{
			fieldGameID,
			{
				Name: "amount", Label: "Amount", Placeholder: "500000000000000000000",
				Help: "Amount of game tokens to burn (in wei)", Kind: KindAmount,
			},
		},
		Signature:   "burnGameToken(uint256,uint256)",
		Description: "Burn game tokens to get XP back",
	},
	{
		Endpoint: FlowCreate, Title: "Create Flow", Method: http.MethodPost,
		Path: "/api/v1/flow/create",
		Fields: []Field{
			fieldFactory,
			{
				Name: "creda_amount", Label: "CRIDA Amount", Placeholder: "1000000000000000000000",
				Help: "Amount of CRIDA tokens to lock (in wei)", Kind: KindAmount,
			},
			{Name: "game_name", Label: "Game Token Name", Placeholder: "My Game Token", Kind: KindText},
			{Name: "game_symbol", Label: "Game Token Symbol", Placeholder: "MGT", Kind: KindText},
			fieldDecimals,
		},
		Description: "approve CREDA → lock → approve XP → create token",
	},
	{
		Endpoint: FlowBurn, Title: "Burn Flow", Method: http.MethodPost,
		Path: "/api/v1/flow/burn",
		Fields: []Field{
			fieldFactory,
			{
				Name: "game_token_address", Label: "Game Token Address", Placeholder: "0xabcd...",
				Help: "Ethereum address of the game token contract", Kind: KindAddress,
			},
			fieldGameID,
			{
				Name: "burn_amount", Label: "Burn Amount", Placeholder: "500000000000000000000",
				Help: "Amount of game tokens to burn (in wei)", Kind: KindAmount,
			},
		},
		Description: "approve game token → burn for XP",
	},
}

var byName = func() map[Endpoint]*Descriptor {
	m := make(map[Endpoint]*Descriptor, len(descriptors))
	for i := range descriptors {
		m[descriptors[i].Endpoint] = &descriptors[i]
	}
	return m
}()

// Lookup returns the descriptor for name.
func Lookup(name string) (Descriptor, error) {
	d, ok := byName[Endpoint(strings.TrimSpace(name))]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownEndpoint, name)
	}
	return *d, nil
}

// All returns every descriptor in display order.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Fields returns the form inputs for name.
func Fields(name string) ([]Field, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out := make([]Field, len(d.Fields))
	copy(out, d.Fields)
	return out, nil
}

// FieldNames lists the body keys of the endpoint, in form order.
func (d Descriptor) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

func parseUint(s string) (*big.Int, bool) {
	n := new(big.Int)
	var ok bool
	if rest, hex := strings.CutPrefix(s, "0x"); hex {
		_, ok = n.SetString(rest, 16)
	} else {
		_, ok = n.SetString(s, 10)
	}
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}
