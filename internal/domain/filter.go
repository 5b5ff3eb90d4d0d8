package domain

import "time"

// ProcessFilter contains filtering/pagination parameters for the public
// process listing. Zero values mean "no filter".
type ProcessFilter struct {
	// Status matches the process type, case-insensitively.
	Status *string
	// Name is a case-insensitive substring match over title, denounced and denouncer.
	Name *string
	// From and To bound last_update: From inclusive, To exclusive.
	From *time.Time
	To   *time.Time

	Limit  int
	Offset int
}
