package renderer

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform mat3 uNormalMatrix;
uniform float uPointSize;

out vec3 vNormal;
out vec3 vWorld;
out vec3 vLocal;
out vec2 vTexCoord;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    gl_Position = uProjection * uView * world;
    vWorld = world.xyz;
    gl_PointSize = uPointSize;
    vNormal = uNormalMatrix * aNormal;
    vLocal = aPosition;
    vTexCoord = aTexCoord;
}
`

const fragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vWorld;
in vec3 vLocal;
in vec2 vTexCoord;

uniform vec3 uColor;
uniform vec4 uLight;
uniform vec3 uEmission;
uniform bool uLit;
uniform bool uTextured;
uniform bool uSphereMap;
uniform sampler2D uTexture;

out vec4 FragColor;

const float PI = 3.14159265;
const float AMBIENT = 0.1;

void main() {
    vec2 uv = vTexCoord;
    if (uSphereMap) {
        vec3 p = normalize(vLocal);
        uv = vec2(atan(-p.z, p.x) / (2.0 * PI) + 0.5, asin(p.y) / PI + 0.5);
    }

    vec3 base = uColor;
    if (uTextured) {
        base = texture(uTexture, uv).rgb;
    }

    if (uLit) {
        vec3 toLight = uLight.w == 0.0 ? uLight.xyz : uLight.xyz - vWorld;
        float diffuse = max(dot(normalize(vNormal), normalize(toLight)), 0.0);
        base = min(base * (AMBIENT + diffuse) + uEmission, 1.0);
    }

    FragColor = vec4(base, 1.0);
}
`
