package v1

// RegisterRequest is the payload for creating a user account.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required" example:"jane.doe@example.com"` // Unique login name
	Password    string `json:"password" binding:"required" example:"hunter2hunter2"`       // Plain text password, stored only as a hash
	FullName    string `json:"fullName" example:"Jane Doe"`                                // Full name of the user
	PhoneNumber string `json:"phoneNumber" example:"+65 9123 4567"`                        // Phone number of the user
}

type RegisterData struct {
	Message string `json:"message" example:"User registered successfully"`
	UserID  uint64 `json:"userId" example:"42"` // ID of the created user
}

type RegisterResponse struct {
	Data  *RegisterData `json:"data"`                                            // Data for the created user
	Error *string       `json:"error" example:"this username is already in use"` // The error, if any occurred
}

// LoginRequest is the payload for opening a session.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jane.doe@example.com"`
	Password string `json:"password" binding:"required" example:"hunter2hunter2"`
}

type LoginData struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token" example:"65392deb-5e92-4268-b114-297faad6cdce"` // Bearer token for subsequent requests
}

type LoginResponse struct {
	Data  *LoginData `json:"data"`                                                 // Data for the session
	Error *string    `json:"error" example:"the username or password is incorrect"` // The error, if any occurred
}
