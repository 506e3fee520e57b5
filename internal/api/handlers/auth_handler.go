package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cardcollection-app/cardcollection-backend/internal/api/httputil"
	"github.com/cardcollection-app/cardcollection-backend/internal/api/middleware"
	"github.com/cardcollection-app/cardcollection-backend/internal/database"
	"github.com/cardcollection-app/cardcollection-backend/internal/logger"
	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// tokenTTL matches the 30-day sessions collectors have always had.
const tokenTTL = 30 * 24 * time.Hour

// AuthHandler manages registration, login and profile lookup.
type AuthHandler struct {
	users    database.UserRepository
	secret   string
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users database.UserRepository, secret string, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{users: users, secret: secret, validate: validate}
}

// generateToken signs a 30-day HS256 token for the given account.
func (h *AuthHandler) generateToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.secret))
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Datos de registro inválidos: "+err.Error())
		return
	}

	existing, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		logger.Error("register: could not check existing user: %v", err)
		httputil.Error(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if existing != nil {
		httputil.Error(w, http.StatusBadRequest, "El usuario ya existe")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("register: could not hash password: %v", err)
		httputil.Error(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	user, err := h.users.CreateUser(r.Context(), &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Cedula:   req.Cedula,
		Role:     models.RoleUser,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			httputil.Error(w, http.StatusBadRequest, "El usuario ya existe")
			return
		}
		logger.Error("register: could not create user: %v", err)
		httputil.Error(w, http.StatusBadRequest, "No se pudo crear el usuario")
		return
	}

	token, err := h.generateToken(user.ID)
	if err != nil {
		logger.Error("register: could not sign token: %v", err)
		httputil.Error(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	httputil.Created(w, models.AuthResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Cedula: user.Cedula,
		Role:   user.Role,
		Token:  token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Datos de acceso inválidos")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		logger.Error("login: could not look up user: %v", err)
		httputil.Error(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		httputil.Error(w, http.StatusUnauthorized, "Email o contraseña incorrectos")
		return
	}

	token, err := h.generateToken(user.ID)
	if err != nil {
		logger.Error("login: could not sign token: %v", err)
		httputil.Error(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	httputil.Success(w, models.AuthResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Cedula: user.Cedula,
		Role:   user.Role,
		Token:  token,
	})
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	httputil.Success(w, models.AuthResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Cedula: user.Cedula,
		Role:   user.Role,
	})
}
