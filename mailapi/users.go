package mailapi

// User is a member of the account with access to some or all brands.
type User struct {
	ID          string   `json:"id" validate:"required,uuid" example:"6f8a0c2d-4e6b-4a9c-8d2f-7a9c1e3b5f57" description:"User identifier."`
	Email       string   `json:"email" validate:"required,email" example:"morgan@acme.example" description:"Login address, unique within the account."`
	Name        string   `json:"name" validate:"required,min=1,max=255" example:"Morgan Lee" description:"Full name."`
	Role        string   `json:"role" validate:"required,oneof=owner admin member" example:"admin" description:"Permission level; owners cannot be created through the API."`
	BrandIDs    []string `json:"brand_ids" validate:"required,dive,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brands a member can access; empty for owners and admins."`
	CreatedAt   int64    `json:"created_at" validate:"required" example:"1714558800" description:"Creation time, unix seconds."`
	LastLoginAt *int64   `json:"last_login_at" nullable:"true" example:"1715600000" description:"Last login time, unix seconds; null if the user never logged in."`
}

// CreateUserBody is the body of CreateUser. An invitation is emailed to the
// new user.
type CreateUserBody struct {
	Email    string   `json:"email" validate:"required,email" example:"morgan@acme.example" description:"Login address, unique within the account."`
	Name     string   `json:"name" validate:"required,min=1,max=255" example:"Morgan Lee" description:"Full name."`
	Role     string   `json:"role" validate:"required,oneof=admin member" example:"member" description:"Permission level."`
	BrandIDs []string `json:"brand_ids,omitempty" validate:"omitempty,dive,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brands a member can access."`
}

// UpdateUserBody is the body of UpdateUser.
type UpdateUserBody struct {
	Name     string   `json:"name,omitempty" validate:"omitempty,min=1,max=255" example:"Morgan Lee-Park" description:"Full name."`
	Role     string   `json:"role,omitempty" validate:"omitempty,oneof=admin member" example:"admin" description:"Permission level."`
	BrandIDs []string `json:"brand_ids,omitempty" validate:"omitempty,dive,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Replaces the brands a member can access."`
}

// UserPath addresses a single user.
type UserPath struct {
	UserID string `json:"user_id" validate:"required,uuid" example:"6f8a0c2d-4e6b-4a9c-8d2f-7a9c1e3b5f57" description:"User identifier."`
}

// UserFilter narrows ListUsers.
type UserFilter struct {
	Role string `json:"role,omitempty" validate:"omitempty,oneof=owner admin member" example:"member" description:"Only return users with this role."`
}
