package schema

// Requester is an entity requesting work items.
type Requester struct {
	ClientID             string   `json:"ClientID" yaml:"client_id"`
	Name                 string   `json:"ClientName" yaml:"name"`
	PriorityLevel        int      `json:"PriorityLevel" yaml:"priority_level"`
	RequestedWorkItemIDs []string `json:"RequestedTaskIDs" yaml:"requested_work_item_ids"`
	GroupTag             string   `json:"GroupTag" yaml:"group_tag"`
	AttributesText       string   `json:"AttributesJSON" yaml:"attributes_text"`
}

// Resource is an entity with skills and available capacity slots.
type Resource struct {
	WorkerID           string   `json:"WorkerID" yaml:"worker_id"`
	Name               string   `json:"WorkerName" yaml:"name"`
	Skills             []string `json:"Skills" yaml:"skills"`
	AvailableSlots     []int    `json:"AvailableSlots" yaml:"available_slots"`
	MaxLoadPerPhase    int      `json:"MaxLoadPerPhase" yaml:"max_load_per_phase"`
	GroupTag           string   `json:"WorkerGroup" yaml:"group_tag"`
	QualificationLevel int      `json:"QualificationLevel" yaml:"qualification_level"`
}

// WorkItem is a unit of work with a duration and skill requirements.
type WorkItem struct {
	TaskID          string   `json:"TaskID" yaml:"task_id"`
	Name            string   `json:"TaskName" yaml:"name"`
	Category        string   `json:"Category" yaml:"category"`
	Duration        int      `json:"Duration" yaml:"duration"`
	RequiredSkills  []string `json:"RequiredSkills" yaml:"required_skills"`
	PreferredPhases []int    `json:"PreferredPhases" yaml:"preferred_phases"`
	MaxConcurrent   int      `json:"MaxConcurrent" yaml:"max_concurrent"`
}
