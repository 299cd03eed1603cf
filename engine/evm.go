package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/frikke/txengine/interfaces"
	"github.com/frikke/txengine/money"
)

// EVMAddressValidator is the default destination validator for
// EVM-family assets: hex syntax, EIP-55 checksum when the address is
// mixed-case, and contract detection through an injected code reader.
type EVMAddressValidator struct {
	code   interfaces.ContractCodeReader
	logger *zap.Logger
}

// NewEVMAddressValidator creates a validator. The code reader may be
// nil, in which case contract status is not reported.
func NewEVMAddressValidator(code interfaces.ContractCodeReader, log *zap.Logger) *EVMAddressValidator {
	if log == nil {
		log = zap.NewNop()
	}
	return &EVMAddressValidator{code: code, logger: log}
}

// Validate implements interfaces.AddressValidator.
func (v *EVMAddressValidator) Validate(ctx context.Context, asset money.Currency, address string) (*interfaces.AddressStatus, error) {
	if !common.IsHexAddress(address) {
		return &interfaces.AddressStatus{Valid: false}, nil
	}

	// A mixed-case address carries an EIP-55 checksum; reject when it
	// doesn't verify. All-lower and all-upper addresses carry none.
	trimmed := strings.TrimPrefix(address, "0x")
	if trimmed != strings.ToLower(trimmed) && trimmed != strings.ToUpper(trimmed) {
		if common.HexToAddress(address).Hex() != address {
			v.logger.Debug("Address failed checksum verification",
				zap.String("address", address))
			return &interfaces.AddressStatus{Valid: false}, nil
		}
	}

	status := &interfaces.AddressStatus{Valid: true}
	if v.code != nil {
		hasCode, err := v.code.HasCode(ctx, common.HexToAddress(address).Hex())
		if err != nil {
			return nil, fmt.Errorf("failed to check contract code at %s: %w", address, err)
		}
		status.IsContract = hasCode
	}
	return status, nil
}
