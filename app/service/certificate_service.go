package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/trishhi-git/ayush-launchpad-app/app/model"
	"github.com/trishhi-git/ayush-launchpad-app/app/repo"
)

type CertificateService struct {
	appRepo  repo.ApplicationRepository
	userRepo repo.UserRepository
}

func NewCertificateService(appRepo repo.ApplicationRepository, userRepo repo.UserRepository) *CertificateService {
	return &CertificateService{appRepo: appRepo, userRepo: userRepo}
}

type certificateData struct {
	CompanyName   string
	ApplicationID string
	Category      string
	Location      string
	FoundedYear   int
	FounderName   string
	IssueDate     string
	CertificateID string
}

// POST /api/v1/applications/:id/certificate
//
// Only approved applications get a certificate; everything else is treated as
// not found, matching the portal's public behaviour.
func (s *CertificateService) Generate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid application id",
		})
	}

	app, err := s.appRepo.FindByID(id)
	if err != nil || app.Status != model.StatusApproved {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Application not found or not approved",
		})
	}

	userID := c.Locals("user_id").(uuid.UUID)
	role := c.Locals("role").(string)
	if role != model.RoleAdmin && app.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "You are not authorised to download this certificate",
		})
	}

	founder, err := s.userRepo.FindByID(app.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load founder profile",
		})
	}

	now := time.Now()
	data := certificateData{
		CompanyName:   app.CompanyName,
		ApplicationID: app.ApplicationID,
		Category:      app.AyushCategory,
		Location:      app.Location,
		FoundedYear:   app.FoundedYear,
		FounderName:   founder.FullName,
		IssueDate:     now.Format("02/01/2006"),
		CertificateID: fmt.Sprintf("AYUSH-%s-%d", app.ApplicationID, now.Year()),
	}

	var buf bytes.Buffer
	if err := certificateTmpl.Execute(&buf, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate certificate",
		})
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="AYUSH_Certificate_%s.html"`, app.ApplicationID))
	return c.Send(buf.Bytes())
}

// RenderCertificate is exposed for tests; handlers go through Generate.
func RenderCertificate(app *model.Application, founderName string, issued time.Time) (string, error) {
	var buf bytes.Buffer
	err := certificateTmpl.Execute(&buf, certificateData{
		CompanyName:   app.CompanyName,
		ApplicationID: app.ApplicationID,
		Category:      app.AyushCategory,
		Location:      app.Location,
		FoundedYear:   app.FoundedYear,
		FounderName:   founderName,
		IssueDate:     issued.Format("02/01/2006"),
		CertificateID: fmt.Sprintf("AYUSH-%s-%d", app.ApplicationID, issued.Year()),
	})
	return buf.String(), err
}

var certificateTmpl = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>AYUSH Registration Certificate</title>
    <style>
        body { font-family: 'Times New Roman', serif; margin: 0; padding: 40px; background: #fff; }
        .certificate { max-width: 800px; margin: 0 auto; border: 3px solid #2E7D32; padding: 40px; }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #2E7D32; margin-bottom: 10px; }
        .title { font-size: 28px; font-weight: bold; color: #1B5E20; margin: 20px 0; }
        .subtitle { font-size: 18px; color: #424242; margin-bottom: 30px; }
        .content { line-height: 1.8; font-size: 16px; }
        .company-name { font-size: 22px; font-weight: bold; color: #2E7D32; }
        .details { margin: 20px 0; }
        .footer { margin-top: 40px; display: flex; justify-content: space-between; }
        .signature { text-align: center; }
        .seal { width: 100px; height: 100px; border: 2px solid #2E7D32; border-radius: 50%; margin: 0 auto 10px; display: flex; align-items: center; justify-content: center; font-weight: bold; color: #2E7D32; }
    </style>
</head>
<body>
    <div class="certificate">
        <div class="header">
            <div class="logo">MINISTRY OF AYUSH</div>
            <div style="font-size: 14px; color: #666;">Government of India</div>
            <div class="title">CERTIFICATE OF REGISTRATION</div>
            <div class="subtitle">AYUSH Startup Registration Portal</div>
        </div>

        <div class="content">
            <p>This is to certify that</p>

            <div class="company-name">{{.CompanyName}}</div>

            <div class="details">
                <p><strong>Application ID:</strong> {{.ApplicationID}}</p>
                <p><strong>Category:</strong> {{.Category}}</p>
                <p><strong>Location:</strong> {{.Location}}</p>
                <p><strong>Founded Year:</strong> {{.FoundedYear}}</p>
                <p><strong>Founder:</strong> {{.FounderName}}</p>
            </div>

            <p>has been successfully registered under the AYUSH Startup Registration Portal and is authorized to operate as a traditional medicine startup in accordance with the guidelines and regulations set forth by the Ministry of AYUSH, Government of India.</p>

            <p>This certificate is valid and serves as official recognition of the startup's compliance with AYUSH standards and regulations.</p>

            <p><strong>Date of Issue:</strong> {{.IssueDate}}</p>
            <p><strong>Certificate ID:</strong> {{.CertificateID}}</p>
        </div>

        <div class="footer">
            <div class="signature">
                <div class="seal">OFFICIAL SEAL</div>
                <div>Authorized Officer</div>
                <div>Ministry of AYUSH</div>
            </div>
            <div class="signature">
                <div style="margin-bottom: 50px;"></div>
                <div>Digital Signature</div>
                <div>Government of India</div>
            </div>
        </div>
    </div>
</body>
</html>`))
