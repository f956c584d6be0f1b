package service

// Recorder is the metric sink injected into the services.
type Recorder interface {
	RoleCreated(version string)
	RoleDeleted()
	RolesAssigned(count int)
	UserCreated()
	UserDeactivated()
	Conflict(resource, reason string)
}

// NopRecorder discards every observation.
type NopRecorder struct{}

func (NopRecorder) RoleCreated(string)      {}
func (NopRecorder) RoleDeleted()            {}
func (NopRecorder) RolesAssigned(int)       {}
func (NopRecorder) UserCreated()            {}
func (NopRecorder) UserDeactivated()        {}
func (NopRecorder) Conflict(string, string) {}
