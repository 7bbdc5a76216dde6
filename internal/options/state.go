package options

// State returns the persisted value stored under key, "" when absent or
// when the state file cannot be read.
func (o *Options) State(key string) string {
	if o.state == nil {
		return ""
	}
	value, _, err := o.state.Get(key)
	if err != nil {
		return ""
	}
	return value
}

// SetState stores value under key and rewrites the state file. A write
// failure is recorded as a Failed exit status.
func (o *Options) SetState(key, value string) bool {
	if o.state == nil {
		return false
	}
	if err := o.state.Set(key, value); err != nil {
		o.SetError(Failed, "Failed to save state: %v.", err)
		return false
	}
	return true
}
