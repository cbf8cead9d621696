package response

import "github.com/gofiber/fiber/v3"

// User-facing messages are kept in Portuguese, matching the product's
// locale.
const (
	MessageInvalidToken        = "Token inválido"
	MessageUserNotFound        = "Usuário não encontrado"
	MessageEmailTaken          = "E-mail já cadastrado"
	MessageInvalidCredentials  = "Credenciais inválidas"
	MessageBadRequest          = "Requisição inválida"
	MessageInternalServerError = "Erro interno do servidor"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes a success payload as-is, with no envelope.
func JSON(c fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}

// Error writes the {"error": <message>} body every failure uses.
func Error(c fiber.Ctx, status int, message string) error {
	if message == "" {
		message = defaultMessageForStatus(status)
	}
	return c.Status(status).JSON(errorBody{Error: message})
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageInvalidToken
	case fiber.StatusNotFound:
		return MessageUserNotFound
	default:
		return MessageInternalServerError
	}
}
