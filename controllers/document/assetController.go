package controllers

import (
	"certmaster/document"
	"certmaster/middleware"
	"certmaster/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadImage converts a user-selected image into a self-contained inline
// payload and stores it in the named slot (bgImage, signatureImage or
// digitalSeal). No external file reference survives into the document.
func UploadImage(c *fiber.Ctx) error {
	slot := document.ImageSlot(c.Params("slot"))
	if !slot.Valid() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Slot de imagem desconhecido!", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Envie o arquivo no campo 'image'!", nil)
	}

	dataURI, err := utils.ImageToDataURI(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Não foi possível processar a imagem enviada!", nil)
	}

	Session.Dispatch(document.SetImage{Slot: slot, Data: dataURI})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Imagem atualizada com sucesso!", fiber.Map{
		"slot": slot,
		"size": len(dataURI),
	})
}

// RemoveImage clears the named slot.
func RemoveImage(c *fiber.Ctx) error {
	slot := document.ImageSlot(c.Params("slot"))
	if !slot.Valid() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Slot de imagem desconhecido!", nil)
	}

	Session.Dispatch(document.ClearImage{Slot: slot})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Imagem removida com sucesso!", nil)
}
