package helper

import (
	"errors"
	"fmt"
	"os"
	"time"

	"ground_manager/constants"
	"ground_manager/database"
	"ground_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	var account model.Account
	if err := database.DB.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(claim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = claim.AccountId
	claims["username"] = claim.Username
	claims["role"] = claim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()
	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(claim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = claim.AccountId
	claims["username"] = claim.Username
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()
	return token.SignedString(JwtSecret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
}

// GetInfoAccountFromToken resolves the logged-in admin account from the
// request token. Second return is true only for an active admin/manager.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}
	idFloat, ok := claims["accountId"].(float64)
	if !ok {
		return model.TokenClaim{}, false
	}
	username, _ := claims["username"].(string)

	var account model.Account
	if err := database.DB.First(&account, uint(idFloat)).Error; err != nil {
		return model.TokenClaim{}, false
	}
	if !account.Active {
		return model.TokenClaim{}, false
	}
	claim := model.TokenClaim{
		AccountId: account.ID,
		Username:  username,
		Role:      account.Role,
	}
	authorized := account.Role == constants.ROLE_ADMIN || account.Role == constants.ROLE_MANAGER
	return claim, authorized
}
