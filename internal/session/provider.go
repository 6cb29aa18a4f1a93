package session

import (
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/kittyofheaven/kaizen-booking/internal/config"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Provider источник bearer-токена сессии.
//
// Отсутствие токена — штатное состояние, а не ошибка: читающие пути при этом
// переходят на fail-open вариант доступности. Токен с истёкшим JWT exp
// считается отсутствующим, чтобы деградировать мягко вместо гарантированного
// 401 от сервиса.
type Provider struct {
	tokenEnv  string
	tokenFile string
	now       func() time.Time
	log       Logger
}

// New создает новый провайдер учётных данных
func New(cfg config.SessionConfig, log Logger) *Provider {
	return &Provider{
		tokenEnv:  cfg.TokenEnv,
		tokenFile: cfg.TokenFile,
		now:       time.Now,
		log:       log,
	}
}

// Token возвращает bearer-токен или пустую строку, если он отсутствует
// или истёк. Приоритет: переменная окружения, затем файл.
func (p *Provider) Token() string {
	token := p.readToken()
	if token == "" {
		return ""
	}

	if p.isExpired(token) {
		p.log.Warn("Session token expired, treating credential as absent")
		return ""
	}

	return token
}

func (p *Provider) readToken() string {
	if p.tokenEnv != "" {
		if token := strings.TrimSpace(os.Getenv(p.tokenEnv)); token != "" {
			return token
		}
	}

	if p.tokenFile != "" {
		raw, err := os.ReadFile(p.tokenFile)
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}

	return ""
}

// isExpired проверяет exp claim токена без верификации подписи.
// Не-JWT (opaque) токены пропускаются как есть — их валидирует сервис.
func (p *Provider) isExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}

	return time.Unix(int64(exp), 0).Before(p.now())
}
