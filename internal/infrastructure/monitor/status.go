package monitor

import "time"

type Status struct {
	Database  bool      `json:"database"`
	Cache     bool      `json:"cache"`
	LastCheck time.Time `json:"last_check"`
}
