package seed

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// planSchema is the CUE definition every plan document must satisfy.
// Validation runs against the raw YAML value, so optional fields stay
// optional and a missing count is legal (it defaults to 1 after decoding).
const planSchema = `
#Plan: {
	name:         string & !=""
	description?: string
	steps: [#Step, ...#Step]
}

#Step: {
	entity: string & !=""
	count?: int & >=1
	overrides?: {...}
}
`

// validatePlan unifies the decoded document with the plan schema and reports
// every violation CUE finds.
func validatePlan(raw map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(planSchema)
	if err := schema.Err(); err != nil {
		// The schema is a compile-time constant; failing to compile it is a
		// bug in this package, not in the plan.
		panic("seed: invalid plan schema: " + err.Error())
	}

	def := schema.LookupPath(cue.ParsePath("#Plan"))
	unified := def.Unify(ctx.Encode(raw))

	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &PlanError{Message: "invalid plan: " + cueerrors.Details(err, nil)}
	}
	return nil
}
