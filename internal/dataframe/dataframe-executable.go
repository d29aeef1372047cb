package dataframe

import (
	"fmt"

	"github.com/go-sif/peek"
)

// CreatePlan flattens a DataFrame's chain of tasks into an executable Plan.
// DataFrames which were not produced by this package cannot be planned.
func CreatePlan(df peek.DataFrame) (*Plan, error) {
	impl, ok := df.(*dataFrameImpl)
	if !ok {
		return nil, fmt.Errorf("DataFrame of type %T cannot be executed", df)
	}
	// create a slice of frames, in order of execution, by following parent links
	frames := []*dataFrameImpl{}
	for next := impl; next != nil; next = next.parent {
		frames = append([]*dataFrameImpl{next}, frames...)
	}
	plan := &Plan{
		source:       impl.source,
		parser:       impl.parser,
		sourceSchema: frames[0].schema,
		schema:       impl.schema,
		tasks:        make([]peek.Task, 0, len(frames)),
		limit:        -1,
	}
	for i, f := range frames {
		if f.taskType == peek.CollectTaskType {
			// only further Collect()s may follow a Collect(), and the smallest limit wins
			if i+1 < len(frames) && frames[i+1].taskType != peek.CollectTaskType {
				return nil, fmt.Errorf("No tasks can follow a Collect()")
			}
			cTask, ok := f.task.(peek.CollectionTask)
			if !ok {
				return nil, fmt.Errorf("taskType is CollectTaskType but Task is not a CollectionTask. Task is misdefined")
			}
			if limit := cTask.GetCollectionLimit(); limit >= 0 && (plan.limit < 0 || limit < plan.limit) {
				plan.limit = limit
			}
		}
		if f.taskType == peek.NoOpTaskType || f.taskType == peek.ExtractTaskType {
			continue
		}
		plan.tasks = append(plan.tasks, f.task)
	}
	return plan, nil
}

// runTasks runs every task in the plan against a freshly-loaded Partition
func (p *Plan) runTasks(part peek.OperablePartition) (peek.OperablePartition, error) {
	var err error
	for _, t := range p.tasks {
		part, err = t.RunWorker(part)
		if err != nil {
			return nil, err
		}
	}
	return part, nil
}
