package models

type LoginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SendMessageRequestBody struct {
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

type MarkReadRequestBody struct {
	From uint `json:"from"`
}

type UpdateUserRequest struct {
	ID        uint    `json:"-"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Password  *string `json:"password"`
}

type CreatePropertyRequestBody struct {
	Title          string  `json:"title"`
	Address        string  `json:"address"`
	Price          float64 `json:"price"`
	Status         string  `json:"status"`
	LandlordID     *uint   `json:"landlord_id"`
	TenantID       *uint   `json:"tenant_id"`
	ContactEmail   string  `json:"contact_email"`
	ContactPhone   string  `json:"contact_phone"`
	Nationality    string  `json:"nationality"`
	ShareCode      string  `json:"share_code"`
	GasSafety      string  `json:"gas_safety"`
	Epc            string  `json:"epc"`
	ElectricalCert string  `json:"electrical_cert"`
}

type UpdatePropertyRequestBody struct {
	Title          *string  `json:"title"`
	Address        *string  `json:"address"`
	Price          *float64 `json:"price"`
	Status         *string  `json:"status"`
	TenantID       *uint    `json:"tenant_id"`
	ContactEmail   *string  `json:"contact_email"`
	ContactPhone   *string  `json:"contact_phone"`
	Nationality    *string  `json:"nationality"`
	ShareCode      *string  `json:"share_code"`
	GasSafety      *string  `json:"gas_safety"`
	Epc            *string  `json:"epc"`
	ElectricalCert *string  `json:"electrical_cert"`
}

type AssignTenantRequestBody struct {
	TenantID uint `json:"tenant_id"`
}

type CreateMaintenanceRequestBody struct {
	PropertyID uint   `json:"property_id"`
	Issue      string `json:"issue"`
	TenantID   *uint  `json:"tenant_id"`
}

type UpdateMaintenanceStatusRequestBody struct {
	Status   *string `json:"status"`
	Response *string `json:"response"`
}

type UploadFileRequestBody struct {
	PropertyID  *uint  `form:"property_id"`
	FileType    string `form:"file_type"`
	Description string `form:"description"`
}

type MarkReadResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
