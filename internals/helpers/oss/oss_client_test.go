package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	svc := &OSSService{Endpoint: "https://oss-ap-south-1.aliyuncs.com", BucketName: "swargandhav"}

	t.Run("from_endpoint", func(t *testing.T) {
		t.Setenv("ALI_OSS_PUBLIC_BASE", "")
		assert.Equal(t,
			"https://swargandhav.oss-ap-south-1.aliyuncs.com/swargandhav_payments/a.png",
			svc.PublicURL("swargandhav_payments/a.png"))
	})

	t.Run("from_public_base", func(t *testing.T) {
		t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.swargandhav.in/")
		assert.Equal(t,
			"https://cdn.swargandhav.in/swargandhav_payments/a.png",
			svc.PublicURL("swargandhav_payments/a.png"))
	})

	t.Run("empty_key", func(t *testing.T) {
		assert.Equal(t, "", svc.PublicURL(""))
	})
}

func TestExtractKeyFromPublicURL(t *testing.T) {
	t.Run("bucket_style_url", func(t *testing.T) {
		t.Setenv("ALI_OSS_PUBLIC_BASE", "")
		key, err := ExtractKeyFromPublicURL("https://swargandhav.oss-ap-south-1.aliyuncs.com/swargandhav_payments/a.png")
		require.NoError(t, err)
		assert.Equal(t, "swargandhav_payments/a.png", key)
	})

	t.Run("public_base_url", func(t *testing.T) {
		t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.swargandhav.in")
		key, err := ExtractKeyFromPublicURL("https://cdn.swargandhav.in/swargandhav_payments/a.png")
		require.NoError(t, err)
		assert.Equal(t, "swargandhav_payments/a.png", key)
	})

	t.Run("empty_url", func(t *testing.T) {
		_, err := ExtractKeyFromPublicURL("")
		assert.Error(t, err)
	})
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "payment-receipt", slugify("Payment Receipt"))
	assert.Equal(t, "img-2026", slugify("IMG_2026"))
	assert.Equal(t, "file", slugify("   "))
	// karakter non-latin dibuang, jatuh ke fallback
	assert.Equal(t, "file", slugify("पावती"))
}
