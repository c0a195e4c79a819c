// Package contactform is the backend of a website contact form. It accepts
// POST /api/send-email with {nombre, correoElectronico, numeroTelefono?, mensaje},
// validates it, and relays it as an HTML and plain-text email through SMTP,
// Resend or Postmark.
//
// # Entry points
//
// The same application is exposed two ways:
//
//   - api.Handler is a serverless function (Production) serving only the
//     send-email route.
//   - cmd/server is a standalone server (Development) that also serves
//     GET /, GET /health, GET /metrics and a JSON 404.
//
// Both build the app through [NewHandler]:
//
//	cfg, err := contactform.LoadConfig(".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app, err := contactform.NewHandler(cfg, contactform.Production)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":3001", app)
//
// # Configuration
//
// [Config] is parsed from the environment once at startup:
//
//	EMAIL_USER            outbound account address (required to send)
//	EMAIL_PASS            password, API key or server token (required to send)
//	EMAIL_RECIPIENT       destination address, defaults to EMAIL_USER
//	PORT                  standalone server port, default 3001
//	APP_ENV               "production" hides error details in production responses
//	SITE_NAME             shown in the sender name and heading, default "GPO Magno"
//	MAIL_PROVIDER         smtp (default), resend or postmark
//	MAIL_SERVICE          SMTP profile: outlook (default), office365, gmail, yahoo
//	SMTP_HOST, SMTP_PORT, SMTP_TLS_MODE   custom relay, overrides MAIL_SERVICE
//	MAIL_TIMEOUT          provider call timeout, default 15s
//	CORS_ALLOWED_ORIGINS  comma-separated list replacing the built-in allow-list
//	SHUTDOWN_TIMEOUT      graceful shutdown timeout, default 10s
//	LOG_LEVEL, SENTRY_DSN, SENTRY_ENVIRONMENT
//
// # Responses
//
//	200 {"success":true,"message":"Correo enviado exitosamente","messageId":"...","environment":"production"}
//	400 {"success":false,"error":"Formato de correo electrónico inválido"}
//	405 {"success":false,"error":"Método no permitido"}
//	500 {"success":false,"error":"...","details":"...","environment":"production"}
package contactform
