package ports

// TokenProvider - источник bearer-токена текущей сессии (только чтение).
// ok=false, если пользователь не вошёл.
type TokenProvider interface {
	Token() (token string, ok bool)
}
