package contact

import "fmt"

const SuccessMessage = "Email sent successfully!"

type SendEmailRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func Subject(name string) string {
	return fmt.Sprintf("New Contact Form Submission from %s", name)
}

func Body(name, email, message string) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", name, email, message)
}
