package admins

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("admins: invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admins: invalid input data")

	// ErrAdminExists возвращается при повторной регистрации email
	ErrAdminExists = errors.New("admins: admin already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("admins: internal error")
)
