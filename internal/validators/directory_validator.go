package validators

import "go.mongodb.org/mongo-driver/bson"

type CreateDriverRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Phone       string  `json:"phone" validate:"required,phone_number"`
	WhatsApp    string  `json:"whatsapp" validate:"omitempty,phone_number"`
	VehicleType string  `json:"vehicleType" validate:"omitempty,max=50"`
	PlateNumber string  `json:"plateNumber" validate:"omitempty,max=20"`
	ServiceArea string  `json:"serviceArea" validate:"omitempty,max=200"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Rating      float64 `json:"rating" validate:"omitempty,rating_value"`
	IsAvailable *bool   `json:"isAvailable"`
}

type UpdateDriverRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Phone       *string  `json:"phone" validate:"omitempty,phone_number"`
	WhatsApp    *string  `json:"whatsapp" validate:"omitempty,phone_number"`
	VehicleType *string  `json:"vehicleType" validate:"omitempty,max=50"`
	PlateNumber *string  `json:"plateNumber" validate:"omitempty,max=20"`
	ServiceArea *string  `json:"serviceArea" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Rating      *float64 `json:"rating" validate:"omitempty,rating_value"`
	IsAvailable *bool    `json:"isAvailable"`
}

type CreateVendorRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Category    string  `json:"category" validate:"required,max=100"`
	Phone       string  `json:"phone" validate:"required,phone_number"`
	WhatsApp    string  `json:"whatsapp" validate:"omitempty,phone_number"`
	Location    string  `json:"location" validate:"omitempty,max=200"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	Rating      float64 `json:"rating" validate:"omitempty,rating_value"`
}

type UpdateVendorRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Phone       *string  `json:"phone" validate:"omitempty,phone_number"`
	WhatsApp    *string  `json:"whatsapp" validate:"omitempty,phone_number"`
	Location    *string  `json:"location" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Rating      *float64 `json:"rating" validate:"omitempty,rating_value"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Icon        string `json:"icon" validate:"omitempty,max=100"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Icon        *string `json:"icon" validate:"omitempty,max=100"`
}

func ValidateCreate(req interface{}) ValidationErrors {
	return ValidateStruct(req)
}

// Updater is implemented by the partial-update requests.
type Updater interface {
	Updates() bson.M
}

// ValidateUpdate checks field rules and that at least one field is present.
func ValidateUpdate(req Updater) ValidationErrors {
	errs := ValidateStruct(req)
	if len(req.Updates()) == 0 {
		errs = append(errs, ValidationError{Field: "request", Message: "No fields to update"})
	}
	return errs
}

func (r *UpdateDriverRequest) Updates() bson.M {
	set := bson.M{}
	setString(set, "name", r.Name)
	setString(set, "phone", r.Phone)
	setString(set, "whatsapp", r.WhatsApp)
	setString(set, "vehicle_type", r.VehicleType)
	setString(set, "plate_number", r.PlateNumber)
	setString(set, "service_area", r.ServiceArea)
	setString(set, "description", r.Description)
	if r.Rating != nil {
		set["rating"] = *r.Rating
	}
	if r.IsAvailable != nil {
		set["is_available"] = *r.IsAvailable
	}
	return set
}

func (r *UpdateVendorRequest) Updates() bson.M {
	set := bson.M{}
	setString(set, "name", r.Name)
	setString(set, "category", r.Category)
	setString(set, "phone", r.Phone)
	setString(set, "whatsapp", r.WhatsApp)
	setString(set, "location", r.Location)
	setString(set, "description", r.Description)
	if r.Rating != nil {
		set["rating"] = *r.Rating
	}
	return set
}

func (r *UpdateCategoryRequest) Updates() bson.M {
	set := bson.M{}
	setString(set, "name", r.Name)
	setString(set, "description", r.Description)
	setString(set, "icon", r.Icon)
	return set
}
