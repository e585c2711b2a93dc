package redact

import (
	"fmt"

	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// setPageContent replaces the content stream of a page with data, stored
// uncompressed. A page's Contents entry is either a single stream or an
// array of streams that concatenate; in the array case the whole rewrite
// goes into the first element and the rest are emptied, which preserves
// the object structure without duplicating content.
func setPageContent(pdfCtx *pdfmodel.Context, pageNr int, data []byte) error {
	pageDict, _, _, err := pdfCtx.PageDict(pageNr, false)
	if err != nil {
		return err
	}
	obj, found := pageDict.Find("Contents")
	if !found {
		return fmt.Errorf("page %d has no Contents entry", pageNr)
	}

	switch o := obj.(type) {
	case types.IndirectRef:
		deref, err := pdfCtx.Dereference(o)
		if err != nil {
			return err
		}
		if arr, ok := deref.(types.Array); ok {
			return replaceStreamArray(pdfCtx, arr, data)
		}
		return replaceStream(pdfCtx, o, data)
	case types.Array:
		return replaceStreamArray(pdfCtx, o, data)
	}
	return fmt.Errorf("page %d: unsupported Contents type %T", pageNr, obj)
}

func replaceStreamArray(pdfCtx *pdfmodel.Context, arr types.Array, data []byte) error {
	for i, o := range arr {
		ir, ok := o.(types.IndirectRef)
		if !ok {
			return fmt.Errorf("content array element %d is %T, not an indirect reference", i, o)
		}
		payload := data
		if i > 0 {
			payload = nil
		}
		if err := replaceStream(pdfCtx, ir, payload); err != nil {
			return err
		}
	}
	return nil
}

func replaceStream(pdfCtx *pdfmodel.Context, ir types.IndirectRef, data []byte) error {
	entry, ok := pdfCtx.FindTableEntryForIndRef(&ir)
	if !ok {
		return fmt.Errorf("no xref entry for object %d", ir.ObjectNumber)
	}
	sd, ok := entry.Object.(types.StreamDict)
	if !ok {
		return fmt.Errorf("object %d is %T, not a stream", ir.ObjectNumber, entry.Object)
	}

	sd.Content = data
	sd.Raw = data
	sd.FilterPipeline = nil
	sd.Delete("Filter")
	sd.Delete("DecodeParms")
	length := int64(len(data))
	sd.StreamLength = &length
	sd.StreamLengthObjNr = nil
	sd.Update("Length", types.Integer(len(data)))

	entry.Object = sd
	return nil
}
