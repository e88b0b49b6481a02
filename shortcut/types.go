package shortcut

// NoneLabel is rendered for an absent association.
const NoneLabel = "[None]"

// Member is a workspace member, used as a lookup target for owner mentions.
type Member struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	MentionName string `json:"mention_name" yaml:"mention_name"`
}

// Mention returns the "@handle" token of the member.
func (m *Member) Mention() string {
	return "@" + m.MentionName
}

// Ref is an optional association of an entity with a team, epic or iteration.
// Upstream records carry the identifier; Name is set when it is known.
type Ref struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Label returns the name of the referenced entity, its ID when the name is
// unknown, or NoneLabel for a nil reference.
func (r *Ref) Label() string {
	if r == nil {
		return NoneLabel
	}
	if r.Name != "" {
		return r.Name
	}
	if r.ID != "" {
		return r.ID
	}
	return NoneLabel
}

// IterationStatus is the lifecycle state of an iteration.
type IterationStatus string

// Recognized iteration statuses.
const (
	IterationStatusUnstarted IterationStatus = "unstarted"
	IterationStatusStarted   IterationStatus = "started"
	IterationStatusCompleted IterationStatus = "completed"
)

// Iteration is a read-only snapshot of an upstream iteration.
type Iteration struct {
	ID          int64           `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	StartDate   string          `json:"start_date" yaml:"start_date"`
	EndDate     string          `json:"end_date" yaml:"end_date"`
	Status      IterationStatus `json:"status" yaml:"status"`
	AppURL      string          `json:"app_url" yaml:"app_url"`
	Team        *Ref            `json:"team,omitempty" yaml:"team,omitempty"`
}

// IsCompleted reports whether the iteration is completed.
func (i *Iteration) IsCompleted() bool {
	return i.Status == IterationStatusCompleted
}

// IsStarted reports whether the iteration is started.
func (i *Iteration) IsStarted() bool {
	return i.Status == IterationStatusStarted
}

// Story workflow state labels.
const (
	StateCompleted  = "Completed"
	StateInProgress = "In Progress"
	StateNotStarted = "Not Started"
)

// Story is a read-only snapshot of an upstream story.
type Story struct {
	ID        int64    `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	StoryType string   `json:"story_type" yaml:"story_type"`
	Started   bool     `json:"started" yaml:"started"`
	Completed bool     `json:"completed" yaml:"completed"`
	Team      *Ref     `json:"team,omitempty" yaml:"team,omitempty"`
	Epic      *Ref     `json:"epic,omitempty" yaml:"epic,omitempty"`
	Iteration *Ref     `json:"iteration,omitempty" yaml:"iteration,omitempty"`
	OwnerIDs  []string `json:"owner_ids" yaml:"owner_ids"`
	AppURL    string   `json:"app_url,omitempty" yaml:"app_url,omitempty"`
}

// State returns the workflow state label of the story.
func (s *Story) State() string {
	switch {
	case s.Completed:
		return StateCompleted
	case s.Started:
		return StateInProgress
	default:
		return StateNotStarted
	}
}

// IterationSearchResult is a single page of iteration search results.
// A nil Iterations slice means the upstream collection was absent,
// an empty slice means no matches.
type IterationSearchResult struct {
	Iterations []*Iteration `json:"iterations" yaml:"iterations"`
	Total      int          `json:"total" yaml:"total"`
}
