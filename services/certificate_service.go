package services

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/devdojo/devdojo-api/configs"
	"github.com/devdojo/devdojo-api/models"
	"github.com/google/uuid"
)

//go:embed certificate.html
var certificateHTML string

var certificateTmpl = template.Must(template.New("certificate").Parse(certificateHTML))

type certificateData struct {
	RecipientName string
	ExamTitle     string
	ObtainedMarks float64
	TotalMarks    float64
	AwardedOn     string
}

// CertificatePublicID is the deterministic storage key for one user's
// certificate for one exam. Re-issuing overwrites the artifact at this key.
func CertificatePublicID(userID, examID uuid.UUID) string {
	return fmt.Sprintf("certificate_%s_%s", userID, examID)
}

// GenerateExamCertificate renders the certificate synchronously into memory,
// uploads it, and returns the durable URL. Nothing is persisted by this
// function, so a failed call is safe to retry.
func GenerateExamCertificate(user models.User, result models.Result) (string, error) {
	html, err := renderCertificateHTML(user, result)
	if err != nil {
		log.Printf("🔥 Failed to render certificate HTML: %v", err)
		return "", err
	}

	pdfBytes, err := renderPDF(html)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate PDF: %v", err)
		return "", err
	}

	url, err := uploadCertificate(pdfBytes, CertificatePublicID(result.UserID, result.ExamID))
	if err != nil {
		// One retry for transient upload failures.
		url, err = uploadCertificate(pdfBytes, CertificatePublicID(result.UserID, result.ExamID))
	}
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return "", err
	}

	log.Printf("✅ Generated certificate for user %s, exam %s.", result.UserID, result.ExamID)
	return url, nil
}

func renderCertificateHTML(user models.User, result models.Result) (string, error) {
	data := certificateData{
		RecipientName: user.FullName,
		ExamTitle:     result.Exam.Title,
		ObtainedMarks: result.ObtainedMarks,
		TotalMarks:    result.Exam.TotalMarks,
		AwardedOn:     time.Now().Format("January 2, 2006"),
	}

	var rendered bytes.Buffer
	if err := certificateTmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func renderPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, publicID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "certificates",
		ResourceType: "raw",
		Overwrite:    api.Bool(true),
		Invalidate:   api.Bool(true),
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
