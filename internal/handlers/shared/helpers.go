package handlers

import (
	"campusmarket/internal/utils"
	"campusmarket/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID reads an ObjectID path parameter, answering 400 when malformed.
func parseID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := validators.ParseObjectID(c.Param(param))
	if err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindJSON decodes the body, answering 400 on malformed input.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return false
	}
	return true
}

func validationFailed(c *gin.Context, errs validators.ValidationErrors) bool {
	if len(errs) == 0 {
		return false
	}
	utils.ValidationErrorResponse(c, errs.FieldErrors())
	return true
}

// actor names the authenticated admin for audit entries.
func actor(c *gin.Context) string {
	if a := c.GetString(utils.ContextActor); a != "" {
		return a
	}
	return utils.UserTypeAdmin
}
