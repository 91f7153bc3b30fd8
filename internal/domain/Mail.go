package domain

// Mail é uma mensagem de alerta pronta para envio
type Mail struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}
