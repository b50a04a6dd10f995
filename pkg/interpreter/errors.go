package interpreter

import (
	"fmt"

	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/printer"
	"github.com/egarof00/PLGroup/pkg/runtime"
)

// ErrStepLimit is returned when a configured step budget runs out.
var ErrStepLimit = runtime.ErrStepLimit

// IllFormedOperationError reports a list projection applied to a value that
// can never become a list.
type IllFormedOperationError struct {
	Op      string
	Operand ast.Term
}

func (e *IllFormedOperationError) Error() string {
	return fmt.Sprintf("%s applied to non-list %s", e.Op, printer.Render(e.Operand))
}
