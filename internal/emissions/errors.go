package emissions

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for emission calculations.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrUnknownMode indicates a mode outside the closed enumeration.
	// This is a programming error in the caller, not bad user input.
	ErrUnknownMode = constError("unknown transport mode")

	// ErrInvalidDistance indicates a NaN or infinite distance.
	// Non-positive distances are not an error: they clamp to zero emission.
	ErrInvalidDistance = constError("distance must be a finite number")

	// ErrInvalidEmission indicates a negative, NaN or infinite emission
	// input. Trip emissions cannot be negative.
	ErrInvalidEmission = constError("emission must be a non-negative finite number")

	// ErrInvalidCredits indicates a negative, NaN or infinite carbon-credit
	// count.
	ErrInvalidCredits = constError("credits must be a non-negative finite number")

	// ErrInvalidFactor indicates an emission factor that is negative,
	// NaN or infinite in an injected factor table.
	ErrInvalidFactor = constError("emission factor must be a non-negative finite number")

	// ErrInvalidPricing indicates an injected credit pricing configuration
	// with a non-positive credit size or an inverted price band.
	ErrInvalidPricing = constError("invalid credit pricing")
)
