package flag

import "fmt"

// Job selects one worker route.
type Job struct {
	JobName string
	Version string
}

func (j Job) String() string {
	return fmt.Sprintf("version=%s, name=%s", j.Version, j.JobName)
}
