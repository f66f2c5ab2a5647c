package rusty

// Shared pre-built results for the commonest success payloads. Value semantics
// make them safe to hand out: no caller can mutate them through the API.
var (
	// OkTrue is Ok(true).
	OkTrue Fallible[bool] = Ok[bool, error](true)

	// OkFalse is Ok(false).
	OkFalse Fallible[bool] = Ok[bool, error](false)

	// OkZero is Ok(0).
	OkZero Fallible[int] = Ok[int, error](0)

	// OkUnit is the shared OkVoid[error]() value.
	OkUnit VoidResult[error] = OkVoid[error]()
)
