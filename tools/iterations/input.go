package iterations

import "github.com/madisonbullard/mcp-server-shortcut/shortcut"

// IterationInput identifies an iteration.
type IterationInput struct {
	IterationPublicID int64 `json:"iterationPublicId" yaml:"iterationPublicId" jsonschema:"required,minimum=1,title=Iteration Public ID,description=The public ID of the iteration" validate:"required,gt=0" fake:"{number:1,1000}"`
}

// SearchIterationsInput is the filter of search-iterations, all fields are optional.
// Date filters accept a date in YYYY-MM-DD format, one of the keywords yesterday, today or tomorrow,
// or a range YYYY-MM-DD..YYYY-MM-DD where either bound may be *.
type SearchIterationsInput struct {
	ID          *int64 `json:"id,omitempty" yaml:"id,omitempty" jsonschema:"description=Select only iterations with the specified id" validate:"omitempty,gt=0" fake:"{number:1,1000}"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty" jsonschema:"description=Find only iterations matching the specified name" fake:"Sprint {number:1,50}"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" jsonschema:"description=Find only iterations matching the specified description" fake:"skip"`
	State       string `json:"state,omitempty" yaml:"state,omitempty" jsonschema:"description=Find only iterations matching the specified state,enum=unstarted,enum=started,enum=done" validate:"omitempty,oneof=unstarted started done" fake:"{randomstring:[unstarted,started,done]}"`
	Team        string `json:"team,omitempty" yaml:"team,omitempty" jsonschema:"description=Find only iterations matching the specified team. This can be a team ID or mention name." fake:"{randomstring:[core,mobile,platform]}"`
	Created     string `json:"created,omitempty" yaml:"created,omitempty" jsonschema:"description=Find only iterations created on the date or in the date range" fake:"skip"`
	Updated     string `json:"updated,omitempty" yaml:"updated,omitempty" jsonschema:"description=Find only iterations updated on the date or in the date range" fake:"skip"`
	StartDate   string `json:"startDate,omitempty" yaml:"startDate,omitempty" jsonschema:"description=Find only iterations starting on the date or in the date range" fake:"2023-01-01..*"`
	EndDate     string `json:"endDate,omitempty" yaml:"endDate,omitempty" jsonschema:"description=Find only iterations ending on the date or in the date range" fake:"skip"`
}

// Terms returns the search filters in query order.
func (in *SearchIterationsInput) Terms() []shortcut.SearchTerm {
	return []shortcut.SearchTerm{
		{Key: "id", Value: in.ID},
		{Key: "name", Value: in.Name},
		{Key: "description", Value: in.Description},
		{Key: "state", Value: in.State},
		{Key: "team", Value: in.Team},
		{Key: "created", Value: in.Created},
		{Key: "updated", Value: in.Updated},
		{Key: "startDate", Value: in.StartDate},
		{Key: "endDate", Value: in.EndDate},
	}
}
