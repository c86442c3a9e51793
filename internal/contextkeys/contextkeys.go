package contextkeys

// RequestIDKey используется как ключ gin.Context для идентификатора запроса.
const RequestIDKey = "request_id"
