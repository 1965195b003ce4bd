package utils

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"noteshare/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

func GenerateToken(cfg *config.Config, userID uint, name string) (string, error) {
	// 生成唯一ID用于黑名单
	jti := time.Now().UnixNano() + rand.Int63()

	claims := jwt.MapClaims{
		"user_id": userID,
		"name":    name,
		"jti":     jti,
		"exp":     time.Now().Add(cfg.JWTExpirationTime).Unix(),
		"iat":     time.Now().Unix(),
		"iss":     cfg.JWTIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecretKey))
}

func ValidateToken(cfg *config.Config, tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecretKey), nil
	})
}

func ExtractClaims(token *jwt.Token) (jwt.MapClaims, error) {
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// 检查token的jti是否在黑名单中（登出后的token）
func IsTokenBlacklisted(ctx context.Context, redisClient *redis.Client, tokenString string) (bool, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return false, nil
	}

	// 只解析claims部分，不验证签名（签名由 ValidateToken 负责）
	claims := jwt.MapClaims{}
	_, _, _ = jwt.NewParser().ParseUnverified(tokenString, claims)

	jtiStr, ok := jtiFromClaims(claims)
	if !ok {
		return false, nil
	}

	_, err := redisClient.Get(ctx, "blacklist:"+jtiStr).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis error checking blacklist: %w", err)
	}
	return true, nil
}

// 将token的jti加入黑名单，过期时间和token剩余寿命一致
func AddTokenToBlacklist(ctx context.Context, redisClient *redis.Client, tokenString string, expiration time.Duration) error {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}

	jtiStr, ok := jtiFromClaims(claims)
	if !ok {
		return nil
	}
	return redisClient.Set(ctx, "blacklist:"+jtiStr, "1", expiration).Err()
}

// jti 可能是 string 也可能是 float64（JSON 数字）
func jtiFromClaims(claims jwt.MapClaims) (string, bool) {
	if jti, ok := claims["jti"].(string); ok {
		return jti, true
	}
	if jti, ok := claims["jti"].(float64); ok {
		return strconv.FormatInt(int64(jti), 10), true
	}
	return "", false
}
