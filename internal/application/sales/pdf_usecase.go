package sales

import (
	"fmt"

	"github.com/tu-usuario/materiales-pro/internal/domain"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
)

// PDFUseCase genera el PDF imprimible de una cotización.
type PDFUseCase struct {
	quotationRepo repository.QuotationRepository
	generator     PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(quotationRepo repository.QuotationRepository, generator PDFGenerator) *PDFUseCase {
	return &PDFUseCase{quotationRepo: quotationRepo, generator: generator}
}

// DownloadQuotationPDF devuelve el PDF y el nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadQuotationPDF(id string) ([]byte, string, error) {
	quotation, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if quotation == nil {
		return nil, "", domain.ErrNotFound
	}
	lines, err := uc.quotationRepo.GetLines(id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.Generate(quotation, lines)
	if err != nil {
		return nil, "", fmt.Errorf("generando PDF de cotización %s: %w", id, err)
	}
	filename := fmt.Sprintf("cotizacion-%s.pdf", quotation.Date.Format("20060102"))
	return pdf, filename, nil
}
