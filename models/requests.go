package models

// RegisterRequest is the JSON body accepted by the registration endpoint.
// Password arrives in plaintext over the transport layer and is hashed
// before it reaches any store.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by the token endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DataPointRequest is the JSON body accepted by the data point creation
// endpoint. The owner is never part of the body; it comes from the verified
// bearer token.
type DataPointRequest struct {
	Value    float64  `json:"value"`
	Category string   `json:"category"`
	Metadata Metadata `json:"metadata,omitempty"`
}
