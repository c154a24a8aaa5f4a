package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalUserID  = "user_id"
	LocalPremium = "premium"
)

// NewJwtMiddleware verifies the bearer token and stores the user id (and
// whether the subscription is premium) in the request locals. Tokens are
// issued elsewhere; this service only checks them.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := parseBearer(ctx, secret)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, err.Error()))
		}
		setClaims(ctx, claims)
		return ctx.Next()
	}
}

// NewOptionalJwtMiddleware is like NewJwtMiddleware but lets anonymous and
// badly authenticated requests through without locals.
func NewOptionalJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if claims, err := parseBearer(ctx, secret); err == nil {
			setClaims(ctx, claims)
		}
		return ctx.Next()
	}
}

func parseBearer(ctx *fiber.Ctx, secret string) (jwt.MapClaims, error) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, Unauthorized("Missing token")
	}

	token, err := jwt.Parse(authHeader[7:], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, Unauthorized("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, Unauthorized("Invalid claims")
	}
	if _, ok := claims["user_id"].(string); !ok {
		return nil, Unauthorized("Invalid claims")
	}
	return claims, nil
}

func setClaims(ctx *fiber.Ctx, claims jwt.MapClaims) {
	ctx.Locals(LocalUserID, claims["user_id"])
	plan, _ := claims["plan"].(string)
	ctx.Locals(LocalPremium, strings.EqualFold(plan, "premium"))
}

// UserID reads the authenticated user from the request locals.
func UserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals(LocalUserID).(string)
	if !ok {
		return uuid.Nil, Unauthorized("Missing token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, Unauthorized("Invalid user id")
	}
	return id, nil
}

func IsPremium(ctx *fiber.Ctx) bool {
	premium, _ := ctx.Locals(LocalPremium).(bool)
	return premium
}
