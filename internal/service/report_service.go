package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"hearingheroes/internal/models"
)

// ReportService emails progress summaries to parents via Amazon SES
type ReportService struct {
	client    *sesv2.Client
	metrics   *MetricsService
	fromEmail string
	fromName  string
	enabled   bool
	debug     bool
}

// NewReportService creates a new report service. When fromEmail is not
// configured the service is created disabled and SendProgressReport becomes
// a no-op.
func NewReportService(metrics *MetricsService, awsRegion, fromEmail, fromName string, debug bool) (*ReportService, error) {
	if fromEmail == "" {
		log.Println("Report service disabled: REPORT_FROM_EMAIL not configured")
		return &ReportService{
			metrics: metrics,
			enabled: false,
			debug:   debug,
		}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)
	log.Printf("Report service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &ReportService{
		client:    client,
		metrics:   metrics,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
		debug:     debug,
	}, nil
}

// IsEnabled returns whether the report service can send email
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport emails the current overall statistics to a parent.
func (s *ReportService) SendProgressReport(ctx context.Context, toEmail, childName string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): progress report to %s", toEmail)
		return nil
	}

	stats, err := s.metrics.GetOverallStatistics()
	if err != nil {
		return fmt.Errorf("failed to build progress report: %w", err)
	}

	subject := fmt.Sprintf("%s's Listening Practice Progress", childName)
	htmlBody := buildReportHTML(childName, stats)
	textBody := buildReportText(childName, stats)

	if s.debug {
		log.Printf("[DEBUG] Sending progress report: subject=%s, to=%s", subject, toEmail)
	}

	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send progress report to %s: %w", toEmail, err)
	}

	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] Message ID: %s", *result.MessageId)
	}
	log.Printf("Progress report sent: to=%s", toEmail)
	return nil
}

func buildReportHTML(childName string, stats *models.OverallStatistics) string {
	var contrastRows strings.Builder
	for _, ct := range stats.ContrastStatistics {
		contrastRows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%.1f%%</td></tr>\n",
			ct.ContrastType.DisplayName(), ct.TotalPractices, ct.AccuracyPercentage))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4a90e2; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		table { border-collapse: collapse; width: 100%%; }
		th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>%s's Progress Report</h1>
		</div>
		<div class="content">
			<p>Here is a summary of %s's listening practice so far:</p>
			<ul>
				<li>Completed sessions: %d</li>
				<li>Total practices: %d</li>
				<li>Overall accuracy: %.1f%%</li>
				<li>Average response time: %.0f ms</li>
			</ul>
			<h3>Accuracy by sound contrast</h3>
			<table>
				<tr><th>Contrast</th><th>Practices</th><th>Accuracy</th></tr>
				%s
			</table>
		</div>
		<div class="footer">
			<p>This is an automated email from Hearing Heroes. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, childName, childName, stats.TotalSessions, stats.TotalPractices,
		stats.AccuracyPercentage, stats.AverageResponseTimeMs, contrastRows.String())
}

func buildReportText(childName string, stats *models.OverallStatistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s's Progress Report\n\n", childName)
	fmt.Fprintf(&b, "Completed sessions: %d\n", stats.TotalSessions)
	fmt.Fprintf(&b, "Total practices: %d\n", stats.TotalPractices)
	fmt.Fprintf(&b, "Overall accuracy: %.1f%%\n", stats.AccuracyPercentage)
	fmt.Fprintf(&b, "Average response time: %.0f ms\n", stats.AverageResponseTimeMs)
	if stats.LastSessionTimestamp != nil {
		fmt.Fprintf(&b, "Last session: %s\n", stats.LastSessionTimestamp.Format(time.RFC1123))
	}
	b.WriteString("\nAccuracy by sound contrast:\n")
	for _, ct := range stats.ContrastStatistics {
		fmt.Fprintf(&b, "- %s: %.1f%% over %d practices\n",
			ct.ContrastType.DisplayName(), ct.AccuracyPercentage, ct.TotalPractices)
	}
	b.WriteString("\n---\nThis is an automated email from Hearing Heroes. Please do not reply.\n")
	return b.String()
}
