package handler

// --- Request / Response types ---

// createLeadRequest mirrors the landing page form. The agree flag is accepted
// for forward compatibility with the consent checkbox but is not persisted.
type createLeadRequest struct {
	FullName         string `json:"fullName"         validate:"required,min=2"`
	Phone            string `json:"phone"            validate:"required,min=10"`
	Email            string `json:"email"            validate:"required,email"`
	Organization     string `json:"organization"     validate:"required,min=2"`
	OrganizationType string `json:"organizationType" validate:"omitempty"`
	Requirements     string `json:"requirements"     validate:"omitempty"`
	Agree            string `json:"agree"            validate:"omitempty"`
}

type submitLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// errorResponse is the envelope for all 4xx/5xx responses. Errors carries
// per-field detail on validation failures and is omitted otherwise.
type errorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Localized response copy. The product's display language is Vietnamese.
const (
	msgSubmitOK         = "Đăng ký demo thành công! Chúng tôi sẽ liên hệ với bạn trong 24h."
	msgInvalidData      = "Dữ liệu không hợp lệ"
	msgInternalError    = "Lỗi hệ thống, vui lòng thử lại sau"
	msgInternalShort    = "Lỗi hệ thống"
	msgMissingTopicTone = "Vui lòng cung cấp đầy đủ thông tin chủ đề và tone"
	msgGenerationFailed = "Không thể tạo nội dung. Vui lòng thử lại sau."
)
