package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/users-api/internal/handlers/middleware"
	"github.com/rafabene/users-api/internal/infrastructure/i18n"
)

// T traduz key no idioma da requisição. Sem o middleware de i18n, devolve a própria chave.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service := i18nService(c)
	if service == nil {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma detectado para a requisição,
// ou o idioma padrão do serviço quando nenhum foi detectado
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	if service := i18nService(c); service != nil {
		return service.GetDefaultLanguage()
	}
	return "en"
}

func i18nService(c *gin.Context) *i18n.Service {
	value, ok := c.Get(middleware.I18nServiceContextKey)
	if !ok {
		return nil
	}
	service, _ := value.(*i18n.Service)
	return service
}
