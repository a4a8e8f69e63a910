package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"kreartif/internal/config"
)

type EmailService interface {
	SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error
}

type emailService struct {
	client *resend.Client
	config *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &emailService{
		client: client,
		config: cfg,
	}
}

func (s *emailService) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error {
	subject := "Selamat Datang di KreArtif!"

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="id">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Selamat Datang di KreArtif</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9fafb;">

	<!-- Header -->
	<div style="background: linear-gradient(135deg, #6366f1 0%%, #4f46e5 100%%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
		<h1 style="color: #ffffff; margin: 0; font-size: 28px;">
			KreArtif
		</h1>
		<p style="color: #e0e7ff; margin: 10px 0 0 0; font-size: 16px;">
			Galeri Karya Kreatif Mahasiswa
		</p>
	</div>

	<!-- Content -->
	<div style="background-color: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">

		<h2 style="color: #111827; margin-top: 0;">
			Halo, %s!
		</h2>

		<p>
			Terima kasih telah bergabung dengan <strong>KreArtif</strong>.
			Mulailah mengunggah karyamu dan bagikan kreativitasmu kepada semua orang.
		</p>

		<div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
			<h3 style="margin-top: 0; color: #111827;">
				Informasi Akun
			</h3>
			<div style="margin-bottom: 10px;">
				<strong>Email:</strong> %s
			</div>
			<div>
				<strong>Nama:</strong> %s
			</div>
		</div>

		<p>
			Karya yang kamu unggah akan ditinjau oleh Admin sebelum tampil di galeri.
			Kamu akan menerima notifikasi begitu karyamu disetujui.
		</p>

		<!-- Button -->
		<div style="text-align: center; margin: 30px 0;">
			<a href="%s"
			   style="background-color: #6366f1; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: bold; display: inline-block;">
				Mulai Berkarya
			</a>
		</div>

		<hr style="border: none; border-top: 1px solid #e5e7eb; margin: 30px 0;">

		<p style="font-size: 14px; color: #6b7280;">
			Salam hangat,<br>
			<strong>Tim KreArtif</strong>
		</p>
	</div>

	<!-- Footer -->
	<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #9ca3af;">
		<p>
			© 2026 KreArtif. Hak cipta dilindungi.
		</p>
	</div>

</body>
</html>`, fullName, toEmail, fullName, fmt.Sprintf("https://%s", s.config.Domain))

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("KreArtif <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
