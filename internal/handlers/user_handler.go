package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"qna_workspace/dto"
	"qna_workspace/internal/authctx"
	"qna_workspace/internal/middleware"
	"qna_workspace/internal/repository"
	"qna_workspace/model"
	"qna_workspace/services"
)

type UserHandler struct {
	Users         *repository.UserRepository
	Profile       services.ProfileRepos
	JWTSecret     string
	SecureCookies bool
}

// POST /user/signup
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var body dto.SignupReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}
	username := strings.TrimSpace(body.Username)
	email := strings.TrimSpace(strings.ToLower(body.Email))
	if username == "" || email == "" || body.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "username, email and password required"})
	}

	if _, err := h.Users.FindByUsernameOrEmail(c.Context(), username, email); err == nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Username or email already exists"})
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return internalError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
	if err != nil {
		return internalError(c, err)
	}

	user, err := h.Users.Insert(c.Context(), model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	})
	if err != nil {
		// the unique indexes catch signups racing past the explicit check
		if repository.IsDuplicateKey(err) {
			return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Username or email already exists"})
		}
		return internalError(c, err)
	}

	token, err := middleware.SignToken(h.JWTSecret, user.ID.Hex(), user.Username)
	if err != nil {
		return internalError(c, err)
	}
	h.setTokenCookie(c, token)
	return c.Status(http.StatusCreated).JSON(dto.MessageResp{Message: "User created successfully"})
}

// POST /user/login
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}

	email := strings.TrimSpace(strings.ToLower(body.Email))
	user, err := h.Users.FindByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid email or password"})
		}
		return internalError(c, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid email or password"})
	}

	token, err := middleware.SignToken(h.JWTSecret, user.ID.Hex(), user.Username)
	if err != nil {
		return internalError(c, err)
	}
	h.setTokenCookie(c, token)
	return c.JSON(dto.MessageResp{Message: "Login successful"})
}

// POST /user/logout
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.SecureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.JSON(dto.MessageResp{Message: "Logged out successfully"})
}

// GET /user/profile
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized: No user ID provided"})
	}

	user, err := h.Users.FindByID(c.Context(), uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		}
		return internalError(c, err)
	}

	profile, err := services.BuildProfile(c.Context(), user, h.Profile)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(profile)
}

func (h *UserHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Expires:  time.Now().Add(middleware.TokenTTL),
		HTTPOnly: true,
		Secure:   h.SecureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
