package ses

import (
	"context"
	"fmt"
	"net/url"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"demandcast/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendRunCompleted(ctx context.Context, toEmail string, n port.RunNotification) error {
	resultsURL := fmt.Sprintf("%s/results?session_id=%s", s.frontendURL, url.QueryEscape(n.DatasetID))

	best := n.BestModel
	if n.BestMAPE != nil {
		best = fmt.Sprintf("%s (MAPE %.2f%%)", n.BestModel, *n.BestMAPE)
	}

	subject := fmt.Sprintf("Resultados de pronóstico listos: %s", n.DatasetName)
	htmlBody := buildRunCompletedHTML(n.DatasetName, best, n.ModelCount, resultsURL)
	textBody := fmt.Sprintf("El análisis de \"%s\" terminó.\n\nSe evaluaron %d modelos; el mejor fue %s.\n\nConsulta los resultados en:\n%s\n\nDemandCast", n.DatasetName, n.ModelCount, best, resultsURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendRunFailed(ctx context.Context, toEmail string, datasetName, reason string) error {
	subject := fmt.Sprintf("El análisis de %s falló", datasetName)
	htmlBody := buildRunFailedHTML(datasetName, reason)
	textBody := fmt.Sprintf("El análisis de \"%s\" no pudo completarse.\n\nMotivo: %s\n\nPuedes volver a cargar los datos e intentarlo de nuevo.\n\nDemandCast", datasetName, reason)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildRunCompletedHTML(datasetName, best string, modelCount int, resultsURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Resultados de pronóstico listos</h2>
  <p>El análisis de <strong>%s</strong> terminó.</p>
  <p>Se evaluaron %d modelos; el mejor fue <strong>%s</strong>.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Ver resultados</a>
  </p>
  <p>O copia y pega este enlace en tu navegador:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">DemandCast - Análisis de demanda y pronósticos</p>
</body>
</html>`, datasetName, modelCount, best, resultsURL, resultsURL)
}

func buildRunFailedHTML(datasetName, reason string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">El análisis no pudo completarse</h2>
  <p>El análisis de <strong>%s</strong> falló.</p>
  <p>Motivo: %s</p>
  <p>Puedes volver a cargar los datos e intentarlo de nuevo.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">DemandCast - Análisis de demanda y pronósticos</p>
</body>
</html>`, datasetName, reason)
}
