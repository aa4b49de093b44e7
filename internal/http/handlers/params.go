package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDParam parses a path id, answering 400 itself when it is malformed.
func objectIDParam(ctx *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param(name))
	if err != nil {
		RespondInvalidID(ctx, name)
		return primitive.NilObjectID, false
	}

	return id, true
}
