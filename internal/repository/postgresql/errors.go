package postgresql

import "fmt"

type queryStage string

const (
	stageBuild   queryStage = "build"
	stageExecute queryStage = "execute"
	stageScan    queryStage = "scan"
	stageCollect queryStage = "collect rows of"
)

// queryError wraps err with the stage and the statement it failed on.
func queryError(stage queryStage, statement string, err error) error {
	return fmt.Errorf("failed to %s %s query: %w", stage, statement, err)
}
