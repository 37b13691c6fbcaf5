package config

// OpenState opens the default store and wraps it in a State.
func OpenState() (*State, error) {
	if err := EnsureGlobalDir(); err != nil {
		return nil, err
	}
	store, err := OpenDefaultStore()
	if err != nil {
		return nil, err
	}
	return NewState(store), nil
}
