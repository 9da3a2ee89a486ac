// Package prompts assembles the instruction text sent to the image models.
package prompts

import (
	"fmt"
	"regexp"
	"strings"
)

// FallbackColor is used when a requested color is not a valid hex code.
const FallbackColor = "#ffffff"

// DefaultGenerationColor is the brand blue used by DefaultGeneration.
const DefaultGenerationColor = "#0463ac"

var (
	hexColor  = regexp.MustCompile(`(?i)^#([0-9A-F]{3}){1,2}$`)
	hexInText = regexp.MustCompile(`#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})`)
)

// SafeColor returns color when it is a #RGB or #RRGGBB code, FallbackColor
// otherwise.
func SafeColor(color string) string {
	color = strings.TrimSpace(color)
	if hexColor.MatchString(color) {
		return color
	}
	return FallbackColor
}

// ColorFromText returns the first hex color code found in text.
func ColorFromText(text string) (string, bool) {
	m := hexInText.FindString(text)
	return m, m != ""
}

// TextureEdit is the instruction for replacing the texture of the seating
// object in the base image with the second image, recolored to color.
func TextureEdit(color string) string {
	return "Strictly follow these instructions. You are an expert photo editor. " +
		"Your only output must be the edited image, with no accompanying text. " +
		"From the first image provided (the base image), identify the main seating object (sofa, chair, or bench). " +
		"Replace the texture of ONLY that seating object with the texture from the second image provided. " +
		fmt.Sprintf("The color of the new texture must be precisely %s. ", SafeColor(color)) +
		"Maintain the original shape, folds, lighting, and shadows of the seating object perfectly. " +
		"All other elements in the room must remain completely unchanged."
}

// TextureSeparator precedes the texture image in a texture edit request.
const TextureSeparator = "Use this as the new texture:"

// DefaultGeneration is used by text-to-image generation when the caller sends
// no prompt.
func DefaultGeneration() string {
	return "Replace the texture of the seating object in the image, whether it's a sofa, chair, bench, or a similar item, with the texture provided in the reference image. " +
		"Maintain the object's original shape, lighting, shadows, and perspective. " +
		"Apply the new texture naturally so it follows the surface contours, folds, and material behavior. " +
		fmt.Sprintf("Only apply the reference color (%s) to the seating object. ", DefaultGenerationColor) +
		"Ensure the rest of the scene remains unchanged, and the final result looks photorealistic and seamlessly integrated."
}

// Describe asks a vision model for a recreation prompt of an image, with the
// furniture recolored to color.
func Describe(color string) string {
	return "Please provide a detailed description of the image shown. " +
		"The description should capture every aspect of the image, including but not limited to the following details: " +
		"Ambiance and Lighting. " +
		"Layout and Composition: Explain the arrangement of objects, their positions relative to each other, and the overall composition of the scene. " +
		"Colors and Textures: Mention the dominant colors, any noticeable patterns, and the textures of various surfaces. " +
		"Objects and Elements: List all the objects present in the image, their sizes, shapes, and any distinguishing features. " +
		"Background and Foreground: Describe the background elements and how they contrast or complement the foreground. " +
		"The goal is to create a prompt with a length of less than 1000 characters of text that allows an AI to recreate the image as accurately as possible based on the detailed description provided. " +
		"This is the most important thing among all, if there is a sofa, chair, bed, table, or furniture, please change the dominant color with the following hex code " +
		SafeColor(color)
}
