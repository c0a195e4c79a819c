// Package contact implements the contact form endpoint: decoding and
// validating a submission, composing the Spanish notification email and
// dispatching it through a mailer.Sender.
//
// Behavior that differs between the serverless function and the local server
// is driven by Deployment, chosen once at startup:
//
//	composer, err := contact.NewComposer(contact.Production, contact.Identity{
//	    SiteName: "GPO Magno",
//	    Sender:   cfg.EmailUser,
//	})
//	svc := contact.NewService(mailer.New(sender, cfg.Mail), composer, contact.Credentials{
//	    User:     cfg.EmailUser,
//	    Password: cfg.EmailPass,
//	})
//	app := internal.New(
//	    internal.WithErrorHandler(contact.ErrorHandler(contact.Production, false)),
//	    internal.WithHandlers(contact.NewHandler(svc, contact.Production)),
//	)
//
// Errors returned by the handler are typed (*ValidationError, *MethodError,
// *ConfigError, *DispatchError) and rendered by ErrorHandler as
// {"success": false, "error": ...} with status 400, 405 or 500.
package contact
