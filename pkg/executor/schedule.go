package executor

import (
	"github.com/arthur-debert/edit-move/pkg/types"
)

// StepKind tells apart the moves a schedule is made of.
type StepKind int

const (
	// StepMove moves a source straight to its destination.
	StepMove StepKind = iota
	// StepToScratch parks a cycle member on a scratch path.
	StepToScratch
	// StepFromScratch moves the parked entry to its real destination.
	StepFromScratch
)

func (k StepKind) String() string {
	switch k {
	case StepToScratch:
		return "to-scratch"
	case StepFromScratch:
		return "from-scratch"
	default:
		return "move"
	}
}

// Step is a single rename call.
type Step struct {
	Kind StepKind
	// Op is the plan operation the step belongs to.
	Op   types.RenameOperation
	From string
	To   string
	// Group identifies the chain or cycle; steps of a group depend on each other.
	Group int
}

// Schedule orders plan into rename steps. The plan must be validated: sources
// and destinations pairwise distinct. scratch is called once per cycle with
// the operation chosen to break it and must return an unused path.
//
// Chains come first, in plan order of their terminal operation, then cycles in
// plan order of their first member.
func Schedule(plan types.RenamePlan, scratch func(types.RenameOperation) string) []Step {
	n := len(plan)
	sources := plan.SourceIndex()

	// next[i] is the operation currently occupying i's destination.
	// prev[j] is the operation waiting for j to vacate its source.
	next := make([]int, n)
	prev := make([]int, n)
	for i := range plan {
		next[i], prev[i] = -1, -1
	}
	for i, op := range plan {
		if j, ok := sources[op.Destination]; ok && j != i {
			next[i] = j
			prev[j] = i
		}
	}

	visited := make([]bool, n)
	steps := make([]Step, 0, n)
	group := 0

	move := func(i int) Step {
		return Step{Kind: StepMove, Op: plan[i], From: plan[i].Source, To: plan[i].Destination, Group: group}
	}

	for i := range plan {
		if next[i] != -1 || visited[i] {
			continue
		}
		for j := i; j != -1; j = prev[j] {
			visited[j] = true
			steps = append(steps, move(j))
		}
		group++
	}

	// Everything left belongs to a cycle.
	for i := range plan {
		if visited[i] {
			continue
		}
		broken := prev[i]
		tmp := scratch(plan[broken])
		visited[broken] = true
		steps = append(steps, Step{
			Kind:  StepToScratch,
			Op:    plan[broken],
			From:  plan[broken].Source,
			To:    tmp,
			Group: group,
		})
		for j := prev[broken]; j != broken; j = prev[j] {
			visited[j] = true
			steps = append(steps, move(j))
		}
		steps = append(steps, Step{
			Kind:  StepFromScratch,
			Op:    plan[broken],
			From:  tmp,
			To:    plan[broken].Destination,
			Group: group,
		})
		group++
	}

	return steps
}
