package dto

// Version describes the build that is currently serving requests.
// Commit is nil when GIT_COMMIT is unset and encodes as JSON null; a set but
// empty variable is kept as "".
type Version struct {
	Version string  `json:"version"`
	Commit  *string `json:"commit"`
	Env     string  `json:"env"`
}
