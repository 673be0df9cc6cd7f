package falkorerrors

import "errors"

// ErrTeapot guards against dereferencing a nil Error; it should never
// surface outside of that defensive path.
var ErrTeapot = errors.New("backend developer is a teapot")
