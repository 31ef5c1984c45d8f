package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/transport/api/middlewares"
	"github.com/fsdevblog/consulting-checkout/internal/transport/gateway/toss"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errInvalidID = errors.New("invalid id")

// ErrorResponse тело ответа с ошибкой. Code машиночитаемая причина отказа, Retryable подсказывает клиенту,
// имеет ли смысл повторить запрос без изменений.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Retryable bool   `json:"retryable"`
}

type errorClass struct {
	err       error
	status    int
	code      string
	retryable bool
}

// errorClasses порядок важен: первая подходящая ошибка определяет ответ.
var errorClasses = []errorClass{
	{domain.ErrInvalidQuantity, http.StatusUnprocessableEntity, "INVALID_QUANTITY", false},
	{domain.ErrScheduleUnavailable, http.StatusUnprocessableEntity, "SCHEDULE_UNAVAILABLE", false},
	{domain.ErrInvalidCoupon, http.StatusUnprocessableEntity, "INVALID_COUPON", false},
	{domain.ErrInvalidPointAmount, http.StatusUnprocessableEntity, "INVALID_POINT_AMOUNT", false},
	{domain.ErrEmptyOrder, http.StatusUnprocessableEntity, "EMPTY_ORDER", false},
	{domain.ErrInsufficientBalance, http.StatusPaymentRequired, "INSUFFICIENT_BALANCE", false},
	{domain.ErrPaymentRejected, http.StatusPaymentRequired, "PAYMENT_REJECTED", false},
	{domain.ErrAmountMismatch, http.StatusConflict, "AMOUNT_MISMATCH", false},
	{domain.ErrOrderAlreadyFinalized, http.StatusConflict, "ORDER_ALREADY_FINALIZED", false},
	{domain.ErrInvalidOrderState, http.StatusConflict, "INVALID_ORDER_STATE", false},
	{domain.ErrOwnerConflict, http.StatusConflict, "OWNER_CONFLICT", false},
	{domain.ErrDuplicateKey, http.StatusConflict, "DUPLICATE", false},
	{domain.ErrOrderBusy, http.StatusConflict, "ORDER_BUSY", true},
	{domain.ErrRecordNotFound, http.StatusNotFound, "NOT_FOUND", false},
	{domain.ErrAuthRequired, http.StatusUnauthorized, "AUTH_REQUIRED", false},
	{domain.ErrGatewayUnavailable, http.StatusServiceUnavailable, "GATEWAY_UNAVAILABLE", true},
}

// classifyError сопоставляет доменную ошибку http статусу и телу ответа.
func classifyError(err error) (int, ErrorResponse) {
	for _, ec := range errorClasses {
		if !errors.Is(err, ec.err) {
			continue
		}
		resp := ErrorResponse{Error: ec.err.Error(), Code: ec.code, Retryable: ec.retryable}

		var rejected *toss.RejectedError
		if errors.As(err, &rejected) && rejected.Code != "" {
			resp.Code = rejected.Code
			resp.Error = rejected.Message
		}
		return ec.status, resp
	}
	return http.StatusInternalServerError, ErrorResponse{
		Error:     "internal server error",
		Code:      "SERVER_ERROR",
		Retryable: true,
	}
}

// abortWithError отдает клиенту классифицированную ошибку. Сама ошибка уходит в лог.
func abortWithError(c *gin.Context, err error) {
	status, resp := classifyError(err)
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.AbortWithStatusJSON(status, resp)
}

// abortWithBindError отвечает на ошибку разбора запроса. Ошибки валидации дают 422, остальные 400.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: valErrs.Error(),
			Code:  "VALIDATION_FAILED",
		})
		return
	}
	_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "bad request", Code: "BAD_REQUEST"})
}

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired и middlewares.OwnerRequired. В случае, если значения в контексте нет или ошибка
// утверждения типа - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// getOwnerFromContext владелец запроса: юзер либо гость.
func getOwnerFromContext(c *gin.Context) domain.Owner {
	if userID := getUserIDFromContext(c); userID != 0 {
		return domain.Owner{UserID: userID}
	}
	return domain.Owner{GuestToken: c.GetString(middlewares.GuestTokenKey)}
}

// idParam разбирает положительный числовой параметр пути.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(errInvalidID).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: errInvalidID.Error(), Code: "NOT_FOUND"})
		return 0, false
	}
	return id, true
}
